package attendance

import (
	"strings"
	"testing"

	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	providerA = "0190a1b2-7c3d-7e4f-8a5b-6c7d8e9f0a1b"
	providerB = "0190a1b2-7c3d-7e4f-8a5b-6c7d8e9f0a1c"
)

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	return verrs.ToMap()
}

func TestSubmitAttendanceRequest_Valid(t *testing.T) {
	req := SubmitAttendanceRequest{
		Date: "2024-02-29",
		Records: []RecordInput{
			{ServiceProviderID: providerA, Present: true, Note: strPtr("  came late  ")},
			{ServiceProviderID: " " + providerB + " ", Present: false, Note: strPtr("   ")},
		},
	}

	require.NoError(t, req.Validate())
	assert.Equal(t, "came late", *req.Records[0].Note)
	assert.Nil(t, req.Records[1].Note)
	assert.Equal(t, providerB, req.Records[1].ServiceProviderID)
}

func TestSubmitAttendanceRequest_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		req   SubmitAttendanceRequest
		field string
	}{
		{
			name:  "missing date",
			req:   SubmitAttendanceRequest{Records: []RecordInput{{ServiceProviderID: providerA}}},
			field: "date",
		},
		{
			name:  "bad date",
			req:   SubmitAttendanceRequest{Date: "2023-02-29", Records: []RecordInput{{ServiceProviderID: providerA}}},
			field: "date",
		},
		{
			name:  "no records",
			req:   SubmitAttendanceRequest{Date: "2024-01-01"},
			field: "records",
		},
		{
			name:  "missing provider",
			req:   SubmitAttendanceRequest{Date: "2024-01-01", Records: []RecordInput{{Present: true}}},
			field: "records[0].service_provider_id",
		},
		{
			name:  "provider not uuid",
			req:   SubmitAttendanceRequest{Date: "2024-01-01", Records: []RecordInput{{ServiceProviderID: providerA}, {ServiceProviderID: "42"}}},
			field: "records[1].service_provider_id",
		},
		{
			name: "note too long",
			req: SubmitAttendanceRequest{Date: "2024-01-01", Records: []RecordInput{
				{ServiceProviderID: providerA, Note: strPtr(strings.Repeat("x", MaxNoteLength+1))},
			}},
			field: "records[0].note",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fields := validationFields(t, c.req.Validate())
			assert.Contains(t, fields, c.field)
		})
	}
}

func TestSubmitAttendanceRequest_NoteCountsCharacters(t *testing.T) {
	// 200 Devanagari characters are 600 bytes but still within the limit.
	note := strings.Repeat("क", MaxNoteLength)
	req := SubmitAttendanceRequest{Date: "2024-01-01", Records: []RecordInput{{ServiceProviderID: providerA, Note: &note}}}
	assert.NoError(t, req.Validate())
}

func TestSubmitAttendanceRequest_TooManyRecords(t *testing.T) {
	req := SubmitAttendanceRequest{Date: "2024-01-01", Records: make([]RecordInput, MaxBatchSize+1)}
	for i := range req.Records {
		req.Records[i].ServiceProviderID = providerA
	}
	assert.Contains(t, validationFields(t, req.Validate()), "records")
}

func TestSubmitAttendanceRequest_ProviderIDs(t *testing.T) {
	req := SubmitAttendanceRequest{Records: []RecordInput{
		{ServiceProviderID: providerB},
		{ServiceProviderID: providerA},
		{ServiceProviderID: providerB},
	}}
	assert.Equal(t, []string{providerB, providerA}, req.ProviderIDs())
}
