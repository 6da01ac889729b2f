package postgresql_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/staffbook/staffbook-backend-go/internal/domain/attendance"
	"github.com/staffbook/staffbook-backend-go/internal/domain/salary"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
	"github.com/staffbook/staffbook-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffbook/staffbook-backend-go/internal/service/attendance"
	salaryService "github.com/staffbook/staffbook-backend-go/internal/service/salary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttendanceService(db *database.DB) attendance.AttendanceService {
	return attendanceService.NewAttendanceService(postgresql.NewTransactor(db), postgresql.NewAttendanceRepository(db), nil)
}

func submit(t *testing.T, svc attendance.AttendanceService, ownerID, date string, records ...attendance.RecordInput) error {
	t.Helper()
	_, err := svc.Submit(context.Background(), ownerID, attendance.SubmitAttendanceRequest{Date: date, Records: records})
	return err
}

func countRows(t *testing.T, db *database.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(context.Background(), `SELECT COUNT(*) FROM attendance`).Scan(&n))
	return n
}

func TestAttendance_SubmitIsIdempotent(t *testing.T) {
	db := freshDB(t)
	svc := newAttendanceService(db)
	ctx := context.Background()

	o := createOwner(t, db, "919876543210")
	sp := createProvider(t, db, o.ID, "Lakshmi", 500, 2)

	rec := attendance.RecordInput{ServiceProviderID: sp.ID, Present: true, Note: ptr("came late")}
	require.NoError(t, submit(t, svc, o.ID, "2024-03-05", rec))
	require.NoError(t, submit(t, svc, o.ID, "2024-03-05", rec))
	assert.Equal(t, 1, countRows(t, db))

	require.NoError(t, submit(t, svc, o.ID, "2024-03-05", attendance.RecordInput{ServiceProviderID: sp.ID, Present: false}))
	assert.Equal(t, 1, countRows(t, db))

	day, err := svc.GetByDate(ctx, o.ID, "2024-03-05")
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.False(t, day[0].Present)
	assert.Nil(t, day[0].Note)
}

func TestAttendance_ForeignProviderRollsBackBatch(t *testing.T) {
	db := freshDB(t)
	svc := newAttendanceService(db)

	ownerA := createOwner(t, db, "919876543210")
	ownerB := createOwner(t, db, "919123456789")
	mine := createProvider(t, db, ownerA.ID, "Lakshmi", 500, 2)
	theirs := createProvider(t, db, ownerB.ID, "Sita", 600, 1)

	err := submit(t, svc, ownerA.ID, "2024-03-05",
		attendance.RecordInput{ServiceProviderID: mine.ID, Present: true},
		attendance.RecordInput{ServiceProviderID: theirs.ID, Present: true},
	)
	assert.ErrorIs(t, err, attendance.ErrProviderNotOwned)

	err = submit(t, svc, ownerA.ID, "2024-03-05",
		attendance.RecordInput{ServiceProviderID: mine.ID, Present: true},
		attendance.RecordInput{ServiceProviderID: uuid.Must(uuid.NewV7()).String(), Present: true},
	)
	assert.ErrorIs(t, err, attendance.ErrProviderNotOwned)
	assert.Equal(t, 0, countRows(t, db))
}

func TestAttendance_InvalidNoteWritesNothing(t *testing.T) {
	db := freshDB(t)
	svc := newAttendanceService(db)

	o := createOwner(t, db, "919876543210")
	sp := createProvider(t, db, o.ID, "Lakshmi", 500, 2)

	err := submit(t, svc, o.ID, "2024-03-05", attendance.RecordInput{ServiceProviderID: sp.ID, Note: ptr(strings.Repeat("n", attendance.MaxNoteLength+1))})
	var verr validator.ValidationErrors
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, countRows(t, db))
}

func TestAttendance_MonthlyLeapFebruary(t *testing.T) {
	db := freshDB(t)
	svc := newAttendanceService(db)
	ctx := context.Background()

	o := createOwner(t, db, "919876543210")
	first := createProvider(t, db, o.ID, "Lakshmi", 500, 2)
	second := createProvider(t, db, o.ID, "Ramesh", 800, 4)

	require.NoError(t, submit(t, svc, o.ID, "2024-02-29", attendance.RecordInput{ServiceProviderID: second.ID, Present: true, Note: ptr("leap day")}))
	require.NoError(t, submit(t, svc, o.ID, "2024-03-01", attendance.RecordInput{ServiceProviderID: second.ID, Present: true}))

	rows, err := svc.GetMonthly(ctx, o.ID, 2024, 2)
	require.NoError(t, err)
	require.Len(t, rows, 58)

	var present []attendance.MonthlyEntryResponse
	for _, row := range rows {
		if row.Present {
			present = append(present, row)
		}
	}
	require.Len(t, present, 1)
	assert.Equal(t, second.ID, present[0].ServiceProviderID)
	assert.Equal(t, "2024-02-29", present[0].Date)
	assert.Equal(t, ptr("leap day"), present[0].Note)
	assert.Equal(t, first.ID, rows[0].ServiceProviderID)
	assert.Equal(t, "2024-02-01", rows[0].Date)

	summary, err := svc.GetMonthlySummary(ctx, o.ID, 2024, 2)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, 29, summary[1].DaysInMonth)
	assert.Equal(t, 1, summary[1].DaysPresent)
	assert.Equal(t, 28, summary[1].DaysUnrecorded)
}

func TestSalary_CalculateAgainstStoredAttendance(t *testing.T) {
	db := freshDB(t)
	att := newAttendanceService(db)
	providerRepo := postgresql.NewServiceProviderRepository(db)
	svc := salaryService.NewSalaryService(providerRepo, postgresql.NewAttendanceRepository(db), nil)
	ctx := context.Background()

	o := createOwner(t, db, "919876543210")
	other := createOwner(t, db, "919123456789")
	sp := createProvider(t, db, o.ID, "Lakshmi", 500, 2)

	// 20 present days, then 3 absences, in April 2024
	for day := 1; day <= 23; day++ {
		rec := attendance.RecordInput{ServiceProviderID: sp.ID, Present: day <= 20}
		require.NoError(t, submit(t, att, o.ID, fmt.Sprintf("2024-04-%02d", day), rec))
	}
	// Outside the month
	require.NoError(t, submit(t, att, o.ID, "2024-05-01", attendance.RecordInput{ServiceProviderID: sp.ID}))

	got, err := svc.Calculate(ctx, o.ID, sp.ID, 2024, 4)
	require.NoError(t, err)
	assert.Equal(t, 20, got.DaysPresent)
	assert.Equal(t, 3, got.DaysAbsent)
	assert.Equal(t, 1, got.UnpaidLeaves)
	assert.Equal(t, "500.00", got.SalaryDeduction)
	assert.Equal(t, "11000.00", got.TotalSalary)

	empty, err := svc.Calculate(ctx, o.ID, sp.ID, 2024, 6)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.DaysPresent)
	assert.Equal(t, "0.00", empty.TotalSalary)

	_, err = svc.Calculate(ctx, other.ID, sp.ID, 2024, 4)
	assert.ErrorIs(t, err, salary.ErrProviderNotFound)

	_, err = svc.Calculate(ctx, o.ID, uuid.Must(uuid.NewV7()).String(), 2024, 4)
	assert.ErrorIs(t, err, salary.ErrProviderNotFound)
}
