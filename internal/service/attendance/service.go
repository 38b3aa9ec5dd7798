package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shiftline/timeclock-backend-go/internal/domain/attendance"
	"github.com/shiftline/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftline/timeclock-backend-go/internal/pkg/excel"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// Ingest implements attendance.AttendanceService.
// Rows run strictly in source order; each row's resolve and merge complete
// before the next row starts. Later rows with the same (employee, date) key
// overwrite earlier ones.
func (s *AttendanceServiceImpl) Ingest(ctx context.Context, rows []excel.Row) (attendance.ImportSummary, error) {
	var summary attendance.ImportSummary

	for i, row := range rows {
		date, ok := excel.NormalizeDate(row.Date)
		if !ok {
			slog.Warn("skipping row with unparseable date", "row", i+1, "value", row.Date.String())
			summary.Skipped++
			continue
		}
		day := excel.DateOnly(date)

		var inTime, outTime *time.Time
		if row.InTime.Kind == excel.KindNumeric {
			if t, ok := excel.TimeOfDay(day, row.InTime.Number); ok {
				inTime = &t
			}
		}
		if row.OutTime.Kind == excel.KindNumeric {
			if t, ok := excel.TimeOfDay(day, row.OutTime.Number); ok {
				outTime = &t
			}
		}

		derived := Derive(day, inTime, outTime)

		name := strings.TrimSpace(row.Name.String())
		if name == "" {
			slog.Warn("skipping row with blank employee name", "row", i+1, "date", day.Format("2006-01-02"))
			summary.Skipped++
			continue
		}

		emp, err := s.EmployeeRepository.FindOrCreateByName(ctx, name)
		if err != nil {
			return attendance.ImportSummary{}, fmt.Errorf("failed to resolve employee %q: %w", name, err)
		}

		_, err = s.AttendanceRepository.Upsert(ctx, attendance.Attendance{
			EmployeeID:    emp.ID,
			Date:          day,
			InTime:        inTime,
			OutTime:       outTime,
			WorkedHours:   derived.WorkedHours,
			ExpectedHours: derived.ExpectedHours,
			IsLeave:       derived.IsLeave,
		})
		if err != nil {
			return attendance.ImportSummary{}, fmt.Errorf("failed to merge attendance for %q on %s: %w", name, day.Format("2006-01-02"), err)
		}

		summary.Processed++
	}

	return summary, nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	facts, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	resp := attendance.ListAttendanceResponse{
		Items: make([]attendance.AttendanceResponse, 0, len(facts)),
	}
	for _, fact := range facts {
		var name string
		if fact.EmployeeName != nil {
			name = *fact.EmployeeName
		}
		resp.Items = append(resp.Items, attendance.AttendanceResponse{
			ID:            fact.ID,
			EmployeeName:  name,
			Date:          fact.Date.Format("2006-01-02"),
			InTime:        timePtrToString(fact.InTime),
			OutTime:       timePtrToString(fact.OutTime),
			WorkedHours:   fact.WorkedHours,
			ExpectedHours: fact.ExpectedHours,
			IsLeave:       fact.IsLeave,
		})
		resp.TotalWorkedHours += fact.WorkedHours
		resp.TotalExpectedHours += fact.ExpectedHours
	}

	return resp, nil
}
