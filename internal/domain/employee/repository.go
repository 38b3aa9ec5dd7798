package employee

import "context"

type EmployeeRepository interface {
	// FindOrCreateByName resolves a trimmed display name to its employee,
	// creating one when absent. A uniqueness conflict on create means a
	// concurrent resolver won the race; the winner's row is re-read and
	// returned instead of surfacing the conflict.
	FindOrCreateByName(ctx context.Context, name string) (Employee, error)

	// GetByName looks up an employee by exact trimmed name.
	GetByName(ctx context.Context, name string) (Employee, error)
}
