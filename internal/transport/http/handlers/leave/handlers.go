package leavehandler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/identity"
	"hrms/internal/domain/leave"
	"hrms/internal/platform/requestctx"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Leave    *leave.Service
	Identity *identity.Service
}

func NewHandler(lv *leave.Service, ids *identity.Service) *Handler {
	return &Handler{Leave: lv, Identity: ids}
}

func (h *Handler) HandleBalances(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	balances, err := h.Leave.Balances(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_error", "failed to load balances", requestID)
		return
	}
	if balances == nil {
		balances = []leave.Balance{}
	}
	api.Success(w, balances, requestID)
}

// HandleListRequests lists the caller's own requests. Managerial roles may
// pass ?pending=true to see the company-wide approval queue instead.
func (h *Handler) HandleListRequests(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var (
		requests []leave.Request
		err      error
	)
	if r.URL.Query().Get("pending") == "true" && identity.IsManagerial(user.RoleName) {
		requests, err = h.Leave.Pending(r.Context())
	} else {
		requests, err = h.Leave.Requests(r.Context(), user.UserID)
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_error", "failed to load requests", requestID)
		return
	}
	if requests == nil {
		requests = []leave.Request{}
	}
	api.Success(w, requests, requestID)
}

type submitRequest struct {
	Type      string `json:"type" validate:"required,oneof=PL CL EL ACL"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var payload submitRequest
	issues, err := shared.DecodeJSON(r, &payload)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if len(issues) > 0 {
		api.FailWithDetails(w, http.StatusUnprocessableEntity, "validation_failed", "validation failed", issues, requestID)
		return
	}

	start, err := shared.ParseDate(payload.StartDate)
	if err != nil {
		api.FailWithDetails(w, http.StatusUnprocessableEntity, "validation_failed", "validation failed", map[string]string{"startDate": "Must be a valid date"}, requestID)
		return
	}
	end, err := shared.ParseDate(payload.EndDate)
	if err != nil {
		api.FailWithDetails(w, http.StatusUnprocessableEntity, "validation_failed", "validation failed", map[string]string{"endDate": "Must be a valid date"}, requestID)
		return
	}
	if end.Before(start) {
		api.FailWithDetails(w, http.StatusUnprocessableEntity, "validation_failed", "validation failed", map[string]string{"endDate": "End date must not be before the start date"}, requestID)
		return
	}

	current, err := h.Identity.Current(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "account no longer exists", requestID)
		return
	}

	created, err := h.Leave.Submit(r.Context(), user.UserID, current.Name, leave.Submission{
		Type:      payload.Type,
		StartDate: start,
		EndDate:   end,
		Reason:    payload.Reason,
	})
	switch {
	case errors.Is(err, leave.ErrInsufficientBalance):
		api.Fail(w, http.StatusUnprocessableEntity, "insufficient_balance", "not enough leave balance for the requested period", requestID)
		return
	case errors.Is(err, leave.ErrUnknownType):
		api.Fail(w, http.StatusUnprocessableEntity, "unknown_leave_type", "unknown leave type", requestID)
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "leave_error", "failed to submit request", requestID)
		return
	}

	api.Created(w, created, requestID)
}

func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Leave.Approve, "approved")
}

func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Leave.Reject, "rejected")
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id string) error, outcome string) {
	requestID := requestctx.GetRequestID(r.Context())
	id := chi.URLParam(r, "id")

	err := action(r.Context(), id)
	switch {
	case errors.Is(err, leave.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", requestID)
		return
	case errors.Is(err, leave.ErrNotPending):
		api.Fail(w, http.StatusConflict, "not_pending", "leave request already decided", requestID)
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "leave_error", "failed to update request", requestID)
		return
	}

	api.Success(w, map[string]string{"id": id, "status": outcome}, requestID)
}
