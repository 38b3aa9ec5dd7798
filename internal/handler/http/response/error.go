package response

import (
	"errors"
	"net/http"

	"github.com/shiftline/timeclock-backend-go/internal/domain/attendance"
	"github.com/shiftline/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftline/timeclock-backend-go/internal/pkg/excel"
	"github.com/shiftline/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Upload errors
	case errors.Is(err, excel.ErrInvalidWorkbook):
		BadRequest(w, err.Error(), nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrBlankName):
		BadRequest(w, "Employee name is blank", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
