package payrollhandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/payroll"
	"hrms/internal/platform/requestctx"
	"hrms/internal/transport/http/api"
)

type Handler struct {
	Payroll *payroll.Service
}

func NewHandler(svc *payroll.Service) *Handler {
	return &Handler{Payroll: svc}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	records, err := h.Payroll.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_error", "failed to load payroll register", requestID)
		return
	}
	if records == nil {
		records = []payroll.Record{}
	}
	api.Success(w, records, requestID)
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	summary, err := h.Payroll.Summarize(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_error", "failed to summarize payroll", requestID)
		return
	}
	api.Success(w, summary, requestID)
}

func (h *Handler) HandlePayslip(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	record, err := h.Payroll.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, payroll.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_error", "failed to load payroll record", requestID)
		return
	}

	slip, err := payroll.RenderPayslip(record)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_error", "failed to render payslip", requestID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="payslip.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(slip)
}

func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())

	records, err := h.Payroll.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_error", "failed to load payroll register", requestID)
		return
	}

	sheet, err := payroll.RenderRegisterXLSX(records)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_error", "failed to render export", requestID)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="payroll.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(sheet)
}
