package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/handler/http/response"
)

// maxAttendanceBody bounds a full batch of records with notes.
const maxAttendanceBody = 1 << 20

type AttendanceHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetByDate(w http.ResponseWriter, r *http.Request)
	GetMonthly(w http.ResponseWriter, r *http.Request)
	GetMonthlySummary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Submit implements AttendanceHandler.
func (h *attendanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requestOwnerID(w, r)
	if !ok {
		return
	}

	var req attendance.SubmitAttendanceRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAttendanceBody)).Decode(&req); err != nil {
		slog.Error("SubmitAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	ack, err := h.attendanceService.Submit(r.Context(), ownerID, req)
	if err != nil {
		slog.Error("SubmitAttendance service error", "error", err, "owner_id", ownerID)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance saved", ack)
}

// GetByDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetByDate(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requestOwnerID(w, r)
	if !ok {
		return
	}

	entries, err := h.attendanceService.GetByDate(r.Context(), ownerID, chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}

// GetMonthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requestOwnerID(w, r)
	if !ok {
		return
	}

	year, month, errs := parseYearMonth(chi.URLParam(r, "year"), chi.URLParam(r, "month"))
	if errs != nil {
		response.HandleError(w, errs)
		return
	}

	entries, err := h.attendanceService.GetMonthly(r.Context(), ownerID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}

// GetMonthlySummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requestOwnerID(w, r)
	if !ok {
		return
	}

	year, month, errs := parseYearMonth(chi.URLParam(r, "year"), chi.URLParam(r, "month"))
	if errs != nil {
		response.HandleError(w, errs)
		return
	}

	summaries, err := h.attendanceService.GetMonthlySummary(r.Context(), ownerID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summaries)
}
