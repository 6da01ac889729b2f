package salary

import "github.com/shopspring/decimal"

// Terms are the provider fields the calculation depends on.
type Terms struct {
	DailySalary   decimal.Decimal
	AllowedLeaves int
}

// Summary is one provider's salary for one month.
type Summary struct {
	DaysPresent     int
	DaysAbsent      int
	UnpaidLeaves    int
	SalaryDeduction decimal.Decimal
	TotalSalary     decimal.Decimal
}

// Calculate applies the unpaid leave rule. Only recorded days count: absences
// up to AllowedLeaves are paid, the rest are deducted at the daily rate.
//
//	unpaid    = max(0, absent - allowed)
//	deduction = unpaid * daily
//	total     = (present + min(absent, allowed)) * daily
func Calculate(terms Terms, daysPresent, daysAbsent int) Summary {
	allowed := terms.AllowedLeaves
	if allowed < 0 {
		allowed = 0
	}
	paidLeaves := min(daysAbsent, allowed)
	unpaid := max(0, daysAbsent-allowed)

	return Summary{
		DaysPresent:     daysPresent,
		DaysAbsent:      daysAbsent,
		UnpaidLeaves:    unpaid,
		SalaryDeduction: terms.DailySalary.Mul(decimal.NewFromInt(int64(unpaid))),
		TotalSalary:     terms.DailySalary.Mul(decimal.NewFromInt(int64(daysPresent + paidLeaves))),
	}
}
