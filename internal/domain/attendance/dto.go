package attendance

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

const (
	MaxNoteLength = 200
	// MaxBatchSize bounds the records of one submission.
	MaxBatchSize = 500
)

type RecordInput struct {
	ServiceProviderID string  `json:"service_provider_id"`
	Present           bool    `json:"present"`
	Note              *string `json:"note"`
}

type SubmitAttendanceRequest struct {
	Date    string        `json:"date"`
	Records []RecordInput `json:"records"`
}

// Validate checks the whole batch and normalizes notes: surrounding
// whitespace is trimmed and a blank note becomes nil.
func (r *SubmitAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	switch {
	case len(r.Records) == 0:
		errs = append(errs, validator.ValidationError{Field: "records", Message: "records must contain at least one entry"})
	case len(r.Records) > MaxBatchSize:
		errs = append(errs, validator.ValidationError{Field: "records", Message: fmt.Sprintf("records must not exceed %d entries", MaxBatchSize)})
	}

	for i := range r.Records {
		rec := &r.Records[i]
		rec.ServiceProviderID = strings.TrimSpace(rec.ServiceProviderID)

		if rec.ServiceProviderID == "" {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("records[%d].service_provider_id", i),
				Message: "service_provider_id is required",
			})
		} else if _, err := uuid.Parse(rec.ServiceProviderID); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("records[%d].service_provider_id", i),
				Message: "service_provider_id must be a valid UUID",
			})
		}

		if rec.Note != nil {
			note := strings.TrimSpace(*rec.Note)
			if note == "" {
				rec.Note = nil
			} else {
				rec.Note = &note
			}
		}
		if rec.Note != nil && validator.Length(*rec.Note) > MaxNoteLength {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("records[%d].note", i),
				Message: fmt.Sprintf("note must not exceed %d characters", MaxNoteLength),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ProviderIDs returns the distinct provider ids of the batch in first-seen order.
func (r *SubmitAttendanceRequest) ProviderIDs() []string {
	seen := make(map[string]struct{}, len(r.Records))
	ids := make([]string, 0, len(r.Records))
	for _, rec := range r.Records {
		if _, ok := seen[rec.ServiceProviderID]; ok {
			continue
		}
		seen[rec.ServiceProviderID] = struct{}{}
		ids = append(ids, rec.ServiceProviderID)
	}
	return ids
}

type SubmitAttendanceResponse struct {
	Date    string `json:"date"`
	Written int    `json:"written"`
}

type DailyEntryResponse struct {
	ServiceProviderID string  `json:"service_provider_id"`
	Name              string  `json:"name"`
	Role              string  `json:"role"`
	Present           bool    `json:"present"`
	Note              *string `json:"note"`
}

func NewDailyEntryResponse(e DailyEntry) DailyEntryResponse {
	return DailyEntryResponse{
		ServiceProviderID: e.ID,
		Name:              e.Name,
		Role:              e.Role,
		Present:           e.Present,
		Note:              e.Note,
	}
}

type MonthlyEntryResponse struct {
	ServiceProviderID string  `json:"service_provider_id"`
	Name              string  `json:"name"`
	Role              string  `json:"role"`
	Date              string  `json:"date"`
	Present           bool    `json:"present"`
	Note              *string `json:"note"`
}

func NewMonthlyEntryResponse(e MonthlyEntry) MonthlyEntryResponse {
	return MonthlyEntryResponse{
		ServiceProviderID: e.ID,
		Name:              e.Name,
		Role:              e.Role,
		Date:              e.Date.Format(validator.DateLayout),
		Present:           e.Present,
		Note:              e.Note,
	}
}

type MonthlySummaryResponse struct {
	ServiceProviderID string `json:"service_provider_id"`
	Name              string `json:"name"`
	Role              string `json:"role"`
	Month             string `json:"month"`
	DaysInMonth       int    `json:"days_in_month"`
	DaysPresent       int    `json:"days_present"`
	DaysAbsent        int    `json:"days_absent"`
	DaysUnrecorded    int    `json:"days_unrecorded"`
}

func NewMonthlySummaryResponse(m Month, s MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		ServiceProviderID: s.ID,
		Name:              s.Name,
		Role:              s.Role,
		Month:             m.String(),
		DaysInMonth:       s.DaysInMonth,
		DaysPresent:       s.DaysPresent,
		DaysAbsent:        s.DaysAbsent,
		DaysUnrecorded:    s.DaysUnrecorded,
	}
}
