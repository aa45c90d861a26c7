package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jivass-tech/payroll-backend-go/internal/domain/attendance"
	"github.com/jivass-tech/payroll-backend-go/internal/handler/http/response"
	attendancesvc "github.com/jivass-tech/payroll-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	MarkStatus(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	SeedHolidays(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService *attendancesvc.Service
}

func NewAttendanceHandler(attendanceService *attendancesvc.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	att, err := h.attendanceService.RecordEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, attendance.NewAttendanceResponse(att))
}

func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	att, err := h.attendanceService.RecordExit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, attendance.NewAttendanceResponse(att))
}

func (h *attendanceHandlerImpl) MarkStatus(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	att, err := h.attendanceService.MarkStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, attendance.NewAttendanceResponse(att))
}

func (h *attendanceHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(time.DateOnly, r.URL.Query().Get("date"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'date' must be YYYY-MM-DD", nil)
		return
	}

	att, err := h.attendanceService.GetByEmployeeAndDate(r.Context(), chi.URLParam(r, "id"), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, attendance.NewAttendanceResponse(att))
}

func (h *attendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		dateParam = time.Now().UTC().Format(time.DateOnly)
	}
	date, err := time.Parse(time.DateOnly, dateParam)
	if err != nil {
		response.BadRequest(w, "Query parameter 'date' must be YYYY-MM-DD", nil)
		return
	}

	rows, err := h.attendanceService.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]attendance.AttendanceResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, attendance.NewAttendanceResponse(row))
	}
	response.Success(w, resp)
}

func (h *attendanceHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	month, err := time.Parse("2006-01", r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'month' must be YYYY-MM", nil)
		return
	}

	summary, err := h.attendanceService.MonthlySummary(r.Context(), chi.URLParam(r, "id"), month.Year(), month.Month())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

func (h *attendanceHandlerImpl) SeedHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 2000 || year > 2200 {
		response.BadRequest(w, "Path parameter 'year' must be a valid year", nil)
		return
	}

	created, err := h.attendanceService.SeedHolidays(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Holidays seeded", map[string]int{"created": created})
}
