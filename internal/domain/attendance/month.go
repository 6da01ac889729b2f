package attendance

import (
	"fmt"
	"time"

	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

// Month is a calendar month. Dates are plain calendar days held at UTC midnight.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth validates a 1-based month number and a four digit year.
func NewMonth(year, month int) (Month, error) {
	var errs validator.ValidationErrors
	if year < 1900 || year > 9999 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be between 1900 and 9999"})
	}
	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if len(errs) > 0 {
		return Month{}, errs
	}
	return Month{Year: year, Month: time.Month(month)}, nil
}

func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) Last() time.Time {
	return m.First().AddDate(0, 1, -1)
}

// Days is the number of days in the month, 29 for a leap February.
func (m Month) Days() int {
	return m.Last().Day()
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// dayKey identifies a record cell regardless of the time zone it was scanned in.
type dayKey struct {
	providerID string
	year       int
	month      time.Month
	day        int
}

func keyOf(providerID string, t time.Time) dayKey {
	y, mo, d := t.Date()
	return dayKey{providerID: providerID, year: y, month: mo, day: d}
}

// NormalizeMonth expands stored records into exactly one entry per provider
// per day of m. Days without a record are absent with no note. Entries come
// grouped by provider in the order given, then by date ascending. Records
// outside m or for providers not listed are ignored.
func NormalizeMonth(m Month, providers []ProviderRef, records []Record) []MonthlyEntry {
	byDay := make(map[dayKey]Record, len(records))
	for _, r := range records {
		byDay[keyOf(r.ServiceProviderID, r.Date)] = r
	}

	days := m.Days()
	first := m.First()
	entries := make([]MonthlyEntry, 0, len(providers)*days)
	for _, p := range providers {
		for d := 0; d < days; d++ {
			date := first.AddDate(0, 0, d)
			entry := MonthlyEntry{ProviderRef: p, Date: date}
			if r, ok := byDay[keyOf(p.ID, date)]; ok {
				entry.Present = r.Present
				entry.Note = r.Note
			}
			entries = append(entries, entry)
		}
	}
	return entries
}

// SummarizeMonth counts present, absent and unrecorded days per provider.
func SummarizeMonth(m Month, providers []ProviderRef, records []Record) []MonthlySummary {
	idx := make(map[string]int, len(providers))
	out := make([]MonthlySummary, len(providers))
	for i, p := range providers {
		idx[p.ID] = i
		out[i] = MonthlySummary{ProviderRef: p, DaysInMonth: m.Days()}
	}

	seen := make(map[dayKey]struct{}, len(records))
	for _, r := range records {
		i, ok := idx[r.ServiceProviderID]
		if !ok {
			continue
		}
		y, mo, _ := r.Date.Date()
		if y != m.Year || mo != m.Month {
			continue
		}
		k := keyOf(r.ServiceProviderID, r.Date)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if r.Present {
			out[i].DaysPresent++
		} else {
			out[i].DaysAbsent++
		}
	}

	for i := range out {
		out[i].DaysUnrecorded = out[i].DaysInMonth - out[i].DaysPresent - out[i].DaysAbsent
	}
	return out
}
