package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/shiftline/timeclock-backend-go/internal/domain/attendance"
	"github.com/shiftline/timeclock-backend-go/internal/handler/http/response"
	"github.com/shiftline/timeclock-backend-go/internal/pkg/excel"
)

type AttendanceHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Import implements AttendanceHandler.
// Accepts a multipart spreadsheet upload and runs it through ingestion.
// A file that cannot be read as a workbook fails the whole request; bad rows
// inside a readable workbook only bump the skipped count.
func (h *attendanceHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "No file uploaded", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	rows, err := excel.ParseWorkbook(file)
	if err != nil {
		slog.Error("Failed to parse workbook", "error", err)
		response.HandleError(w, err)
		return
	}

	summary, err := h.attendanceService.Ingest(r.Context(), rows)
	if err != nil {
		slog.Error("Failed to ingest attendance rows", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance data saved successfully", summary)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter attendance.ListFilter

	if raw := strings.TrimSpace(r.URL.Query().Get("month")); raw != "" && raw != "all" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid month parameter", nil)
			return
		}
		filter.Month = &month
	}
	if emp := strings.TrimSpace(r.URL.Query().Get("employee")); emp != "" && emp != "all" {
		filter.EmployeeName = emp
	}

	result, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
