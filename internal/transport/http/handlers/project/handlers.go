package projecthandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/identity"
	"hrms/internal/domain/project"
	"hrms/internal/platform/requestctx"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Project *project.Service
}

func NewHandler(svc *project.Service) *Handler {
	return &Handler{Project: svc}
}

// draftRequest is the wire shape of the project form. Dates arrive as strings;
// the end date is never accepted, it is always derived.
type draftRequest struct {
	Name              string   `json:"project_name"`
	StartDate         string   `json:"start_date"`
	DurationDays      int      `json:"duration_days"`
	AssignedEmployees []string `json:"assigned_employees"`
	Status            string   `json:"status"`
	Description       string   `json:"description"`
}

func (p draftRequest) toDraft() (project.Draft, map[string]string) {
	draft := project.Draft{
		Name:              p.Name,
		DurationDays:      p.DurationDays,
		AssignedEmployees: p.AssignedEmployees,
		Status:            p.Status,
		Description:       p.Description,
	}
	if p.StartDate != "" {
		start, err := shared.ParseDate(p.StartDate)
		if err != nil {
			return project.Draft{}, map[string]string{"start_date": "Must be a valid date"}
		}
		draft.StartDate = start
	}
	return draft, nil
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	projects, err := h.Project.ListFor(r.Context(), identity.Identity{ID: user.UserID, Role: user.RoleName})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "project_error", "failed to load projects", requestID)
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	api.Success(w, projects, requestID)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	found, err := h.Project.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, project.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "project not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "project_error", "failed to load project", requestID)
		return
	}

	if !identity.IsManagerial(user.RoleName) && !assigned(found, user.UserID) {
		api.Fail(w, http.StatusForbidden, "forbidden", "not assigned to this project", requestID)
		return
	}

	api.Success(w, found, requestID)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var payload draftRequest
	if _, err := shared.DecodeJSON(r, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	draft, issues := payload.toDraft()
	if len(issues) > 0 {
		api.FailWithDetails(w, http.StatusUnprocessableEntity, "validation_failed", "validation failed", issues, requestID)
		return
	}

	created, issues, err := h.Project.Create(r.Context(), user.UserID, draft)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "project_error", "failed to create project", requestID)
		return
	}
	if len(issues) > 0 {
		api.FailWithDetails(w, http.StatusUnprocessableEntity, "validation_failed", "validation failed", issues, requestID)
		return
	}

	api.Created(w, created, requestID)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	var payload draftRequest
	if _, err := shared.DecodeJSON(r, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	draft, issues := payload.toDraft()
	if len(issues) > 0 {
		api.FailWithDetails(w, http.StatusUnprocessableEntity, "validation_failed", "validation failed", issues, requestID)
		return
	}

	updated, issues, err := h.Project.Update(r.Context(), chi.URLParam(r, "id"), draft)
	if errors.Is(err, project.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "project not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "project_error", "failed to update project", requestID)
		return
	}
	if len(issues) > 0 {
		api.FailWithDetails(w, http.StatusUnprocessableEntity, "validation_failed", "validation failed", issues, requestID)
		return
	}

	api.Success(w, updated, requestID)
}

func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	completed, err := h.Project.Complete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, project.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "project not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "project_error", "failed to complete project", requestID)
		return
	}

	api.Success(w, completed, requestID)
}

func assigned(p project.Project, employeeID string) bool {
	for _, id := range p.AssignedEmployees {
		if id == employeeID {
			return true
		}
	}
	return false
}
