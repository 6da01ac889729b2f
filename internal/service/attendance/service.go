package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/metrics"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	tx database.Transactor
	attendance.AttendanceRepository
	metrics *metrics.Metrics
}

func NewAttendanceService(tx database.Transactor, attendanceRepository attendance.AttendanceRepository, m *metrics.Metrics) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepository,
		metrics:              m,
	}
}

func (s *AttendanceServiceImpl) observe(result string) {
	if s.metrics != nil {
		s.metrics.AttendanceSubmissions.WithLabelValues(result).Inc()
	}
}

// Submit implements attendance.AttendanceService.
// Ownership of every provider is checked with one query inside the same
// transaction as the writes; any failure rolls the whole batch back.
func (s *AttendanceServiceImpl) Submit(ctx context.Context, ownerID string, req attendance.SubmitAttendanceRequest) (attendance.SubmitAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		s.observe(metrics.ResultInvalid)
		return attendance.SubmitAttendanceResponse{}, err
	}
	date, _ := validator.IsValidDate(req.Date)
	providerIDs := req.ProviderIDs()

	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		owned, err := s.CountOwnedProviders(txCtx, ownerID, providerIDs)
		if err != nil {
			return fmt.Errorf("%w: %w", attendance.ErrStorage, err)
		}
		if owned != len(providerIDs) {
			return attendance.ErrProviderNotOwned
		}

		// Records are applied in request order, so a provider repeated in
		// one batch ends up with its last entry.
		for _, in := range req.Records {
			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("%w: generate id: %w", attendance.ErrStorage, err)
			}
			rec := attendance.Record{
				ID:                id.String(),
				ServiceProviderID: in.ServiceProviderID,
				Date:              date,
				Present:           in.Present,
				Note:              in.Note,
			}
			if err := s.Upsert(txCtx, rec); err != nil {
				return fmt.Errorf("%w: %w", attendance.ErrStorage, err)
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, attendance.ErrProviderNotOwned):
			s.observe(metrics.ResultForbidden)
			slog.Warn("Attendance batch rejected: foreign provider", "owner_id", ownerID, "date", req.Date)
		case errors.Is(err, attendance.ErrStorage):
			s.observe(metrics.ResultError)
		default:
			// begin or commit failed outside the callback
			s.observe(metrics.ResultError)
			err = fmt.Errorf("%w: %w", attendance.ErrStorage, err)
		}
		return attendance.SubmitAttendanceResponse{}, err
	}

	s.observe(metrics.ResultOK)
	if s.metrics != nil {
		s.metrics.AttendanceRecords.Add(float64(len(req.Records)))
	}
	return attendance.SubmitAttendanceResponse{Date: req.Date, Written: len(req.Records)}, nil
}

// GetByDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetByDate(ctx context.Context, ownerID string, dateStr string) ([]attendance.DailyEntryResponse, error) {
	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}

	entries, err := s.ListByDate(ctx, ownerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for %s: %w", dateStr, err)
	}

	resp := make([]attendance.DailyEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, attendance.NewDailyEntryResponse(e))
	}
	return resp, nil
}

func (s *AttendanceServiceImpl) loadMonth(ctx context.Context, ownerID string, m attendance.Month) ([]attendance.ProviderRef, []attendance.Record, error) {
	providers, err := s.ListProviders(ctx, ownerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list providers: %w", err)
	}
	if len(providers) == 0 {
		return providers, nil, nil
	}
	records, err := s.ListInRange(ctx, ownerID, m.First(), m.Last())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list attendance for %s: %w", m, err)
	}
	return providers, records, nil
}

// GetMonthly implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthly(ctx context.Context, ownerID string, year, month int) ([]attendance.MonthlyEntryResponse, error) {
	m, err := attendance.NewMonth(year, month)
	if err != nil {
		return nil, err
	}
	providers, records, err := s.loadMonth(ctx, ownerID, m)
	if err != nil {
		return nil, err
	}

	entries := attendance.NormalizeMonth(m, providers, records)
	resp := make([]attendance.MonthlyEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, attendance.NewMonthlyEntryResponse(e))
	}
	return resp, nil
}

// GetMonthlySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthlySummary(ctx context.Context, ownerID string, year, month int) ([]attendance.MonthlySummaryResponse, error) {
	m, err := attendance.NewMonth(year, month)
	if err != nil {
		return nil, err
	}
	providers, records, err := s.loadMonth(ctx, ownerID, m)
	if err != nil {
		return nil, err
	}

	summaries := attendance.SummarizeMonth(m, providers, records)
	resp := make([]attendance.MonthlySummaryResponse, 0, len(summaries))
	for _, sum := range summaries {
		resp = append(resp, attendance.NewMonthlySummaryResponse(m, sum))
	}
	return resp, nil
}
