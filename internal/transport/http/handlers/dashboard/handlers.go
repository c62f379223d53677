package dashboardhandler

import (
	"net/http"
	"time"

	"hrms/internal/domain/attendance"
	"hrms/internal/domain/identity"
	"hrms/internal/domain/leave"
	"hrms/internal/platform/requestctx"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

type Handler struct {
	Attendance *attendance.Service
	Leave      *leave.Service
}

func NewHandler(att *attendance.Service, lv *leave.Service) *Handler {
	return &Handler{Attendance: att, Leave: lv}
}

// HandleOverview assembles the landing page payload. Everyone gets their own
// latest attendance and leave balances; managerial roles additionally get the
// company-wide day counters and the approval queue.
func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	out := map[string]any{}

	latest, found, err := h.Attendance.LatestForEmployee(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_error", "failed to load dashboard", requestID)
		return
	}
	if found {
		out["latestAttendance"] = latest
	}

	balances, err := h.Leave.Balances(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_error", "failed to load dashboard", requestID)
		return
	}
	if balances == nil {
		balances = []leave.Balance{}
	}
	out["leaveBalances"] = balances

	if identity.IsManagerial(user.RoleName) {
		stats, err := h.Attendance.StatsForDay(r.Context(), time.Now().UTC())
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "dashboard_error", "failed to load dashboard", requestID)
			return
		}
		out["stats"] = stats

		pending, err := h.Leave.Pending(r.Context())
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "dashboard_error", "failed to load dashboard", requestID)
			return
		}
		if pending == nil {
			pending = []leave.Request{}
		}
		out["pendingApprovals"] = pending
	}

	api.Success(w, out, requestID)
}
