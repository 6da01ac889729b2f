package salary

import "github.com/shopspring/decimal"

type SummaryResponse struct {
	ServiceProviderID string `json:"service_provider_id"`
	Name              string `json:"name"`
	Year              int    `json:"year"`
	Month             int    `json:"month"`
	DailySalary       string `json:"daily_salary"`
	AllowedLeaves     int    `json:"allowed_leaves"`
	DaysPresent       int    `json:"days_present"`
	DaysAbsent        int    `json:"days_absent"`
	UnpaidLeaves      int    `json:"unpaid_leaves"`
	SalaryDeduction   string `json:"salary_deduction"`
	TotalSalary       string `json:"total_salary"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func NewSummaryResponse(providerID, name string, year, month int, terms Terms, s Summary) SummaryResponse {
	return SummaryResponse{
		ServiceProviderID: providerID,
		Name:              name,
		Year:              year,
		Month:             month,
		DailySalary:       money(terms.DailySalary),
		AllowedLeaves:     terms.AllowedLeaves,
		DaysPresent:       s.DaysPresent,
		DaysAbsent:        s.DaysAbsent,
		UnpaidLeaves:      s.UnpaidLeaves,
		SalaryDeduction:   money(s.SalaryDeduction),
		TotalSalary:       money(s.TotalSalary),
	}
}
