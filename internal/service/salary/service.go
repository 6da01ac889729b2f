package salary

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/provider"
	"github.com/staffbook/staffbook-backend-go/internal/domain/salary"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/metrics"
)

type SalaryServiceImpl struct {
	provider.ServiceProviderRepository
	attendance.AttendanceRepository
	metrics *metrics.Metrics
}

func NewSalaryService(providerRepository provider.ServiceProviderRepository, attendanceRepository attendance.AttendanceRepository, m *metrics.Metrics) salary.SalaryService {
	return &SalaryServiceImpl{
		ServiceProviderRepository: providerRepository,
		AttendanceRepository:      attendanceRepository,
		metrics:                   m,
	}
}

func (s *SalaryServiceImpl) observe(result string) {
	if s.metrics != nil {
		s.metrics.SalaryCalculations.WithLabelValues(result).Inc()
	}
}

// Calculate implements salary.SalaryService.
func (s *SalaryServiceImpl) Calculate(ctx context.Context, ownerID string, providerID string, year, month int) (salary.SummaryResponse, error) {
	m, err := attendance.NewMonth(year, month)
	if err != nil {
		s.observe(metrics.ResultInvalid)
		return salary.SummaryResponse{}, err
	}

	if _, err := uuid.Parse(providerID); err != nil {
		s.observe(metrics.ResultInvalid)
		return salary.SummaryResponse{}, salary.ErrProviderNotFound
	}

	sp, err := s.ServiceProviderRepository.GetByID(ctx, ownerID, providerID)
	if err != nil {
		if errors.Is(err, provider.ErrServiceProviderNotFound) {
			s.observe(metrics.ResultInvalid)
			return salary.SummaryResponse{}, salary.ErrProviderNotFound
		}
		s.observe(metrics.ResultError)
		return salary.SummaryResponse{}, fmt.Errorf("failed to get service provider: %w", err)
	}

	present, absent, err := s.CountInRange(ctx, sp.ID, m.First(), m.Last())
	if err != nil {
		s.observe(metrics.ResultError)
		return salary.SummaryResponse{}, fmt.Errorf("failed to count attendance for %s: %w", m, err)
	}

	terms := salary.Terms{DailySalary: sp.DailySalary, AllowedLeaves: sp.AllowedLeaves}
	s.observe(metrics.ResultOK)
	return salary.NewSummaryResponse(sp.ID, sp.Name, year, month, terms, salary.Calculate(terms, present, absent)), nil
}
