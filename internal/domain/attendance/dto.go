package attendance

import (
	"time"

	"github.com/jivass-tech/payroll-backend-go/internal/pkg/validator"
)

type ClockRequest struct {
	EmployeeID string   `json:"employee"`
	Date       string   `json:"date"` // YYYY-MM-DD
	Time       string   `json:"time"` // HH:MM
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee", Message: "employee is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidClockTime(r.Time); !ok {
		errs = append(errs, validator.ValidationError{Field: "time", Message: "time must be HH:MM"})
	}
	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude and longitude must be provided together"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// At combines the request's date and clock time into a timestamp.
func (r *ClockRequest) At() (date time.Time, at time.Time) {
	date, _ = time.Parse(time.DateOnly, r.Date)
	clock, _ := validator.IsValidClockTime(r.Time)
	at = time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
	return date, at
}

type MarkStatusRequest struct {
	EmployeeID string `json:"employee"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	ClearTimes *bool  `json:"clear_times,omitempty"` // defaults to true
}

func (r *MarkStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee", Message: "employee is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown attendance status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee"`
	Date           string   `json:"date"`
	EntryTime      *string  `json:"entry_time"`
	ExitTime       *string  `json:"exit_time"`
	WorkHours      *float64 `json:"work_hours"`
	Status         string   `json:"status"`
	EntryLatitude  *float64 `json:"entry_latitude,omitempty"`
	EntryLongitude *float64 `json:"entry_longitude,omitempty"`
	ExitLatitude   *float64 `json:"exit_latitude,omitempty"`
	ExitLongitude  *float64 `json:"exit_longitude,omitempty"`
}

func NewAttendanceResponse(att Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             att.ID,
		EmployeeID:     att.EmployeeID,
		Date:           att.Date.Format(time.DateOnly),
		Status:         string(att.Status),
		EntryLatitude:  att.EntryLatitude,
		EntryLongitude: att.EntryLongitude,
		ExitLatitude:   att.ExitLatitude,
		ExitLongitude:  att.ExitLongitude,
	}
	if att.EntryTime != nil {
		s := att.EntryTime.Format("15:04")
		resp.EntryTime = &s
	}
	if att.ExitTime != nil {
		s := att.ExitTime.Format("15:04")
		resp.ExitTime = &s
	}
	if att.WorkDuration != nil {
		h := att.WorkDuration.Hours()
		resp.WorkHours = &h
	}
	return resp
}

// MonthlySummary is the per-employee status breakdown for one month.
type MonthlySummary struct {
	EmployeeID string               `json:"employee"`
	Year       int                  `json:"year"`
	Month      int                  `json:"month"`
	Counts     map[string]int       `json:"counts"`
	Details    []AttendanceResponse `json:"details"`
}
