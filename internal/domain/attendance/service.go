package attendance

import "context"

type AttendanceService interface {
	// Submit writes the whole batch or nothing.
	Submit(ctx context.Context, ownerID string, req SubmitAttendanceRequest) (SubmitAttendanceResponse, error)
	GetByDate(ctx context.Context, ownerID string, date string) ([]DailyEntryResponse, error)
	GetMonthly(ctx context.Context, ownerID string, year, month int) ([]MonthlyEntryResponse, error)
	GetMonthlySummary(ctx context.Context, ownerID string, year, month int) ([]MonthlySummaryResponse, error)
}
