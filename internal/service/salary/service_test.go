package salary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/provider"
	"github.com/staffbook/staffbook-backend-go/internal/domain/salary"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/metrics"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerA = "0190a1b2-0000-7000-8000-00000000000a"
	ownerB = "0190a1b2-0000-7000-8000-00000000000b"
	cookID = "0190a1b2-0000-7000-8000-000000000001"
)

type fakeProviders struct {
	provider.ServiceProviderRepository
	items map[string]provider.ServiceProvider
	err   error
}

func (f *fakeProviders) GetByID(_ context.Context, ownerID, id string) (provider.ServiceProvider, error) {
	if f.err != nil {
		return provider.ServiceProvider{}, f.err
	}
	sp, ok := f.items[id]
	if !ok || sp.OwnerID != ownerID {
		return provider.ServiceProvider{}, provider.ErrServiceProviderNotFound
	}
	return sp, nil
}

type fakeAttendance struct {
	attendance.AttendanceRepository
	present, absent int
	from, to        time.Time
	err             error
}

func (f *fakeAttendance) CountInRange(_ context.Context, _ string, from, to time.Time) (int, int, error) {
	f.from, f.to = from, to
	return f.present, f.absent, f.err
}

func newTestService(present, absent int) (*SalaryServiceImpl, *fakeProviders, *fakeAttendance, *metrics.Metrics) {
	providers := &fakeProviders{items: map[string]provider.ServiceProvider{
		cookID: {
			ID:            cookID,
			OwnerID:       ownerA,
			Name:          "Asha",
			Role:          "Cook",
			DailySalary:   decimal.RequireFromString("500.00"),
			AllowedLeaves: 2,
		},
	}}
	att := &fakeAttendance{present: present, absent: absent}
	m := metrics.New()
	return NewSalaryService(providers, att, m).(*SalaryServiceImpl), providers, att, m
}

func TestCalculate(t *testing.T) {
	svc, _, att, m := newTestService(25, 5)

	resp, err := svc.Calculate(context.Background(), ownerA, cookID, 2024, 2)
	require.NoError(t, err)

	assert.Equal(t, salary.SummaryResponse{
		ServiceProviderID: cookID,
		Name:              "Asha",
		Year:              2024,
		Month:             2,
		DailySalary:       "500.00",
		AllowedLeaves:     2,
		DaysPresent:       25,
		DaysAbsent:        5,
		UnpaidLeaves:      3,
		SalaryDeduction:   "1500.00",
		TotalSalary:       "13500.00",
	}, resp)
	assert.Equal(t, "2024-02-01", att.from.Format(validator.DateLayout))
	assert.Equal(t, "2024-02-29", att.to.Format(validator.DateLayout))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SalaryCalculations.WithLabelValues(metrics.ResultOK)))
}

func TestCalculate_NoAttendance(t *testing.T) {
	svc, _, _, _ := newTestService(0, 0)

	resp, err := svc.Calculate(context.Background(), ownerA, cookID, 2024, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.UnpaidLeaves)
	assert.Equal(t, "0.00", resp.SalaryDeduction)
	assert.Equal(t, "0.00", resp.TotalSalary)
}

func TestCalculate_ForeignProviderIsNotFound(t *testing.T) {
	svc, _, _, _ := newTestService(10, 0)

	_, err := svc.Calculate(context.Background(), ownerB, cookID, 2024, 2)
	assert.ErrorIs(t, err, salary.ErrProviderNotFound)

	_, err = svc.Calculate(context.Background(), ownerA, "0190a1b2-0000-7000-8000-0000000000ff", 2024, 2)
	assert.ErrorIs(t, err, salary.ErrProviderNotFound)
}

func TestCalculate_InvalidMonth(t *testing.T) {
	svc, _, _, _ := newTestService(0, 0)

	for _, month := range []int{0, 13} {
		_, err := svc.Calculate(context.Background(), ownerA, cookID, 2024, month)
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs, "month %d", month)
	}
}

func TestCalculate_StorageError(t *testing.T) {
	svc, _, att, m := newTestService(0, 0)
	att.err = errors.New("connection refused")

	_, err := svc.Calculate(context.Background(), ownerA, cookID, 2024, 2)
	require.Error(t, err)
	assert.NotErrorIs(t, err, salary.ErrProviderNotFound)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SalaryCalculations.WithLabelValues(metrics.ResultError)))
}

func TestCalculate_MalformedProviderID(t *testing.T) {
	svc, _, _, _ := newTestService(0, 0)

	_, err := svc.Calculate(context.Background(), ownerA, "not-a-uuid", 2024, 2)
	assert.ErrorIs(t, err, salary.ErrProviderNotFound)
}
