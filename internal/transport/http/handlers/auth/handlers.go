package authhandler

import (
	"errors"
	"log/slog"
	"net/http"

	"hrms/internal/domain/identity"
	"hrms/internal/platform/requestctx"
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

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	var payload loginRequest
	issues, err := shared.DecodeJSON(r, &payload)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if len(issues) > 0 {
		api.FailWithDetails(w, http.StatusUnprocessableEntity, "validation_failed", "validation failed", issues, requestID)
		return
	}

	session, err := h.Identity.Login(r.Context(), payload.Identifier, payload.Password)
	if errors.Is(err, identity.ErrInvalidCredentials) {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", requestID)
		return
	}
	if err != nil {
		slog.Error("login failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "login_error", "failed to sign in", requestID)
		return
	}

	api.Success(w, session, requestID)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	user, _ := middleware.GetUser(r.Context())
	if err := h.Identity.Logout(r.Context(), user.UserID, user.SessionID); err != nil {
		slog.Error("logout failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "logout_error", "failed to sign out", requestID)
		return
	}
	api.Success(w, map[string]bool{"loggedOut": true}, requestID)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	user, _ := middleware.GetUser(r.Context())
	current, err := h.Identity.Current(r.Context(), user.UserID)
	if errors.Is(err, identity.ErrNotFound) {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "account no longer exists", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "lookup_error", "failed to load account", requestID)
		return
	}

	api.Success(w, map[string]any{
		"user":      current,
		"roleLabel": identity.FormatRole(current.Role),
		"roleTone":  identity.RoleBadgeTone(current.Role),
	}, requestID)
}
