package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftline/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftline/timeclock-backend-go/internal/pkg/database"
	"github.com/shiftline/timeclock-backend-go/internal/pkg/validator"
)

const pgUniqueViolation = "23505"

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByName implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByName(ctx context.Context, name string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM employees
		WHERE name = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, strings.TrimSpace(name)).Scan(
		&emp.ID, &emp.Name, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by name: %w", err)
	}

	return emp, nil
}

// FindOrCreateByName implements employee.EmployeeRepository.
// The unique constraint on name is the arbiter: losing a concurrent create
// race surfaces as a 23505, after which the winner's row is re-read.
func (e *employeeRepositoryImpl) FindOrCreateByName(ctx context.Context, name string) (employee.Employee, error) {
	trimmed := strings.TrimSpace(name)
	if validator.IsEmpty(trimmed) {
		return employee.Employee{}, employee.ErrBlankName
	}

	existing, err := e.GetByName(ctx, trimmed)
	if err == nil {
		return existing, nil
	}
	if err != employee.ErrEmployeeNotFound {
		return employee.Employee{}, err
	}

	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at, updated_at
	`

	var created employee.Employee
	err = q.QueryRow(ctx, query, uuid.NewString(), trimmed).Scan(
		&created.ID, &created.Name, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			// Someone else created it first; use their row.
			return e.GetByName(ctx, trimmed)
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee %q: %w", trimmed, err)
	}

	return created, nil
}
