package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftline/timeclock-backend-go/internal/domain/attendance"
	"github.com/shiftline/timeclock-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Upsert(ctx context.Context, fact attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, in_time, out_time,
			worked_hours, expected_hours, is_leave
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			in_time = excluded.in_time,
			out_time = excluded.out_time,
			worked_hours = excluded.worked_hours,
			expected_hours = excluded.expected_hours,
			is_leave = excluded.is_leave,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		fact.EmployeeID,
		fact.Date,
		fact.InTime,
		fact.OutTime,
		fact.WorkedHours,
		fact.ExpectedHours,
		fact.IsLeave,
	).Scan(&fact.ID, &fact.CreatedAt, &fact.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return fact, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, in_time, out_time,
			   worked_hours, expected_hours, is_leave,
			   created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var fact attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&fact.ID, &fact.EmployeeID, &fact.Date, &fact.InTime, &fact.OutTime,
		&fact.WorkedHours, &fact.ExpectedHours, &fact.IsLeave,
		&fact.CreatedAt, &fact.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No fact for this key
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &fact, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.in_time, a.out_time,
			   a.worked_hours, a.expected_hours, a.is_leave,
			   a.created_at, a.updated_at,
			   e.name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
	`

	var conditions []string
	var args []interface{}

	if filter.Month != nil {
		args = append(args, *filter.Month+1)
		conditions = append(conditions, fmt.Sprintf("EXTRACT(MONTH FROM a.date) = $%d", len(args)))
	}
	if filter.EmployeeName != "" {
		args = append(args, filter.EmployeeName)
		conditions = append(conditions, fmt.Sprintf("e.name = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.date ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var facts []attendance.Attendance
	for rows.Next() {
		var fact attendance.Attendance
		err := rows.Scan(
			&fact.ID, &fact.EmployeeID, &fact.Date, &fact.InTime, &fact.OutTime,
			&fact.WorkedHours, &fact.ExpectedHours, &fact.IsLeave,
			&fact.CreatedAt, &fact.UpdatedAt,
			&fact.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		facts = append(facts, fact)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return facts, nil
}
