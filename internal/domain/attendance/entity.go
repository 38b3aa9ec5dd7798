package attendance

import (
	"time"
)

// Attendance is one derived fact: what one employee worked, and was expected
// to work, on one calendar day. At most one row exists per
// (EmployeeID, Date); re-ingestion replaces the row wholesale.
type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	InTime        *time.Time
	OutTime       *time.Time
	WorkedHours   float64
	ExpectedHours float64
	IsLeave       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	EmployeeName *string
}
