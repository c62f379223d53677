package attendancehandler

import (
	"errors"
	"net/http"

	"hrms/internal/domain/attendance"
	"hrms/internal/domain/identity"
	"hrms/internal/platform/requestctx"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

type Handler struct {
	Attendance *attendance.Service
	Identity   *identity.Service
}

func NewHandler(att *attendance.Service, ids *identity.Service) *Handler {
	return &Handler{Attendance: att, Identity: ids}
}

// subjectID resolves whose records the request is about. Managerial roles may
// ask for another employee via ?employeeId=; everyone else always gets their
// own.
func subjectID(r *http.Request) (string, bool) {
	user, _ := middleware.GetUser(r.Context())
	requested := r.URL.Query().Get("employeeId")
	if requested == "" || requested == user.UserID {
		return user.UserID, true
	}
	if !identity.IsManagerial(user.RoleName) {
		return "", false
	}
	return requested, true
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	subject, ok := subjectID(r)
	if !ok {
		api.Fail(w, http.StatusForbidden, "forbidden", "cannot view another employee's attendance", requestID)
		return
	}

	records, err := h.Attendance.ListForEmployee(r.Context(), subject)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_error", "failed to load attendance", requestID)
		return
	}
	if records == nil {
		records = []attendance.Record{}
	}
	api.Success(w, records, requestID)
}

func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	subject, ok := subjectID(r)
	if !ok {
		api.Fail(w, http.StatusForbidden, "forbidden", "cannot export another employee's attendance", requestID)
		return
	}

	records, err := h.Attendance.ListForEmployee(r.Context(), subject)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_error", "failed to load attendance", requestID)
		return
	}

	viewer, err := h.Identity.Current(r.Context(), user.UserID)
	if errors.Is(err, identity.ErrNotFound) {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "account no longer exists", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_error", "failed to load account", requestID)
		return
	}

	sheet, err := attendance.RenderSheetXLSX(records, viewer.Timezone)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_error", "failed to render export", requestID)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="attendance.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(sheet)
}
