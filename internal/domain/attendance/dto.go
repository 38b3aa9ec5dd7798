package attendance

import (
	"github.com/shiftline/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// ImportSummary reports one ingestion run. Skipped counts rows dropped for
// an unparseable date or a blank employee name; neither is fatal to the run.
type ImportSummary struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
}

// ListFilter narrows the fact listing. Month is zero-based (0 = January) to
// match the upstream dashboard's convention; nil means all months.
type ListFilter struct {
	Month        *int
	EmployeeName string
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != nil && (*f.Month < 0 || *f.Month > 11) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 0 and 11",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeName  string  `json:"employee_name"`
	Date          string  `json:"date"`
	InTime        *string `json:"in_time"`
	OutTime       *string `json:"out_time"`
	WorkedHours   float64 `json:"worked_hours"`
	ExpectedHours float64 `json:"expected_hours"`
	IsLeave       bool    `json:"is_leave"`
}

type ListAttendanceResponse struct {
	Items              []AttendanceResponse `json:"items"`
	TotalWorkedHours   float64              `json:"total_worked_hours"`
	TotalExpectedHours float64              `json:"total_expected_hours"`
}
