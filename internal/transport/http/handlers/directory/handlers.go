package directoryhandler

import (
	"errors"
	"net/http"

	"hrms/internal/domain/identity"
	"hrms/internal/platform/requestctx"
	"hrms/internal/platform/timezone"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Identity *identity.Service
}

func NewHandler(svc *identity.Service) *Handler {
	return &Handler{Identity: svc}
}

type directoryEntry struct {
	identity.Identity
	RoleLabel string `json:"roleLabel"`
	RoleTone  string `json:"roleTone"`
}

// HandleEmployees serves the directory with optional free-text search and
// department filter.
func (h *Handler) HandleEmployees(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	query := r.URL.Query().Get("q")
	department := r.URL.Query().Get("department")

	matches, err := h.Identity.Directory(r.Context(), query, department)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "directory_error", "failed to load directory", requestID)
		return
	}

	entries := make([]directoryEntry, 0, len(matches))
	for _, match := range matches {
		entries = append(entries, directoryEntry{
			Identity:  match,
			RoleLabel: identity.FormatRole(match.Role),
			RoleTone:  identity.RoleBadgeTone(match.Role),
		})
	}
	api.Success(w, entries, requestID)
}

func (h *Handler) HandleDepartments(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	departments, err := h.Identity.Departments(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "directory_error", "failed to load departments", requestID)
		return
	}
	if departments == nil {
		departments = []string{}
	}
	api.Success(w, departments, requestID)
}

func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	current, err := h.Identity.Current(r.Context(), user.UserID)
	if errors.Is(err, identity.ErrNotFound) {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "account no longer exists", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "profile_error", "failed to load profile", requestID)
		return
	}

	api.Success(w, directoryEntry{
		Identity:  current,
		RoleLabel: identity.FormatRole(current.Role),
		RoleTone:  identity.RoleBadgeTone(current.Role),
	}, requestID)
}

func (h *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	current, err := h.Identity.Current(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "account no longer exists", requestID)
		return
	}

	api.Success(w, map[string]string{
		"timezone":        current.Timezone,
		"companyTimezone": current.CompanyTimezone,
	}, requestID)
}

type settingsRequest struct {
	Timezone string `json:"timezone" validate:"required"`
}

// HandleUpdateSettings changes the caller's display timezone. Only loadable
// IANA zone names are accepted.
func (h *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var payload settingsRequest
	issues, err := shared.DecodeJSON(r, &payload)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if len(issues) > 0 {
		api.FailWithDetails(w, http.StatusUnprocessableEntity, "validation_failed", "validation failed", issues, requestID)
		return
	}

	if !timezone.Valid(payload.Timezone) {
		api.FailWithDetails(w, http.StatusUnprocessableEntity, "validation_failed", "validation failed", map[string]string{"timezone": "Must be a valid IANA timezone"}, requestID)
		return
	}

	if err := h.Identity.UpdateTimezone(r.Context(), user.UserID, payload.Timezone); err != nil {
		api.Fail(w, http.StatusInternalServerError, "settings_error", "failed to update settings", requestID)
		return
	}

	api.Success(w, map[string]string{"timezone": payload.Timezone}, requestID)
}
