package attendance

import (
	"time"
)

// Weekly expectation policy, fixed for every employee.
const (
	weekdayHours  = 8.5
	saturdayHours = 4.0
)

// ExpectedHours returns the scheduled hours for the weekday of date:
// Monday-Friday 8.5, Saturday 4, Sunday 0.
func ExpectedHours(date time.Time) float64 {
	switch date.Weekday() {
	case time.Sunday:
		return 0
	case time.Saturday:
		return saturdayHours
	default:
		return weekdayHours
	}
}

// WorkedHours returns the positive span between punches in hours, or zero
// when either punch is missing or the span is non-positive (out-before-in
// entry errors are recorded as zero, not rejected).
func WorkedHours(inTime, outTime *time.Time) float64 {
	if inTime == nil || outTime == nil {
		return 0
	}
	diff := outTime.Sub(*inTime)
	if diff <= 0 {
		return 0
	}
	return diff.Hours()
}

// IsLeave reports whether the day counts as leave: a day with positive
// expected hours where at least one punch is missing. A day with no
// expectation can never be leave.
func IsLeave(date time.Time, inTime, outTime *time.Time) bool {
	if ExpectedHours(date) == 0 {
		return false
	}
	return inTime == nil || outTime == nil
}

// Derived bundles the three per-day facts computed from one row.
type Derived struct {
	WorkedHours   float64
	ExpectedHours float64
	IsLeave       bool
}

// Derive computes the attendance facts for one calendar day. Every
// well-formed date and optional-punch combination yields a defined result;
// there is no error path.
func Derive(date time.Time, inTime, outTime *time.Time) Derived {
	return Derived{
		WorkedHours:   WorkedHours(inTime, outTime),
		ExpectedHours: ExpectedHours(date),
		IsLeave:       IsLeave(date, inTime, outTime),
	}
}
