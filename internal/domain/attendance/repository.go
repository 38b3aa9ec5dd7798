package attendance

import (
	"context"
)

// AttendanceRepository defines data access for derived attendance facts.
type AttendanceRepository interface {
	// Upsert atomically creates or wholesale-replaces the fact keyed on
	// (employee_id, date). Last write wins; no field-level merging.
	Upsert(ctx context.Context, fact Attendance) (Attendance, error)

	// List retrieves facts with employee names, ordered by date ascending.
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)

	// GetByEmployeeAndDate retrieves the fact for one key, nil when absent.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*Attendance, error)
}
