package attendance

import (
	"context"

	"github.com/shiftline/timeclock-backend-go/internal/pkg/excel"
)

// AttendanceService defines business logic for attendance ingestion
type AttendanceService interface {
	// Ingest drives parsed spreadsheet rows through normalization,
	// derivation, identity resolution and merging, strictly in source
	// order. Rows with an unparseable date or blank employee name are
	// skipped and counted; storage failures abort the run.
	Ingest(ctx context.Context, rows []excel.Row) (ImportSummary, error)

	// List retrieves derived facts for display, date ascending, with
	// worked/expected hour totals over the filtered set.
	List(ctx context.Context, filter ListFilter) (ListAttendanceResponse, error)
}
