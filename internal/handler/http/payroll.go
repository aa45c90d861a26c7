package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/payroll"
	"github.com/jivass-tech/payroll-backend-go/internal/handler/http/response"
	payrollsvc "github.com/jivass-tech/payroll-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService *payrollsvc.Service
}

func NewPayrollHandler(payrollService *payrollsvc.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll generated", result)
}

func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	month, err := time.Parse("2006-01", chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "Path parameter 'month' must be YYYY-MM", nil)
		return
	}

	result, err := h.payrollService.GetPayslip(r.Context(), chi.URLParam(r, "id"), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *payrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	month, err := time.Parse("2006-01", chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "Path parameter 'month' must be YYYY-MM", nil)
		return
	}
	employeeID := chi.URLParam(r, "id")

	sheet, err := h.payrollService.RenderPayslip(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("payslip-%s-%s.xlsx", employeeID, month.Format("2006-01"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(sheet)
}

func (h *payrollHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	month, err := time.Parse("2006-01", r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'month' must be YYYY-MM", nil)
		return
	}

	records, err := h.payrollService.ListByMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]payroll.PayrollResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, payroll.NewPayrollResponse(record))
	}
	response.Success(w, resp)
}
