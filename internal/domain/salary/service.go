package salary

import "context"

type SalaryService interface {
	Calculate(ctx context.Context, ownerID string, providerID string, year, month int) (SummaryResponse, error)
}
