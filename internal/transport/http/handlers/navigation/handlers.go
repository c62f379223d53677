package navhandler

import (
	"net/http"

	"hrms/internal/domain/navigation"
	"hrms/internal/platform/requestctx"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// HandleMenu returns the menu entries the signed-in role may see, in display
// order.
func (h *Handler) HandleMenu(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	entries := navigation.VisibleTo(user.RoleName)
	if entries == nil {
		entries = []navigation.Entry{}
	}
	api.Success(w, entries, requestctx.GetRequestID(r.Context()))
}
