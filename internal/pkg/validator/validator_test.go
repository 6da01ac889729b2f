package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // valid UUIDv7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // valid UUIDv7 (uppercase)
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"123E4567-E89B-12D3-A456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",                                     // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023-02-29", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestNormalizeMobile(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"9876543210", "919876543210", true},
		{"+91 98765 43210", "919876543210", true},
		{"919876543210", "919876543210", true},
		{"09876543210", "919876543210", true},
		{"98765-43210", "919876543210", true},
		{"5876543210", "", false},
		{"987654321", "", false},
		{"98765432101", "", false},
		{"98765abc10", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizeMobile(c.input)
		if ok != c.ok || got != c.want {
			t.Errorf("NormalizeMobile(%q) = (%q, %v), want (%q, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestIsValidContactNumber(t *testing.T) {
	valid := []string{"9876543210", "+919876543210", "0044 20 7946 0958", "123456789012345"}
	invalid := []string{"123456789", "1234567890123456", "98765abc10", ""}
	for _, phone := range valid {
		if !IsValidContactNumber(phone) {
			t.Errorf("IsValidContactNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidContactNumber(phone) {
			t.Errorf("IsValidContactNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsValidUPI(t *testing.T) {
	valid := []string{"ramesh@okaxis", "ramesh.kumar-1@ybl", "98765432_10@paytm"}
	invalid := []string{"ramesh", "@okaxis", "ramesh@", "r@okaxis", "ramesh@ok axis", "ramesh@123"}
	for _, vpa := range valid {
		if !IsValidUPI(vpa) {
			t.Errorf("IsValidUPI(%q) = false, want true", vpa)
		}
	}
	for _, vpa := range invalid {
		if IsValidUPI(vpa) {
			t.Errorf("IsValidUPI(%q) = true, want false", vpa)
		}
	}
}

func TestIsValidOTP(t *testing.T) {
	valid := []string{"1234", "123456", "1234567890"}
	invalid := []string{"123", "12345678901", "12a456", ""}
	for _, code := range valid {
		if !IsValidOTP(code) {
			t.Errorf("IsValidOTP(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidOTP(code) {
			t.Errorf("IsValidOTP(%q) = true, want false", code)
		}
	}
}

func TestLength(t *testing.T) {
	if got := Length("नमस्ते"); got != 6 {
		t.Errorf("Length(devanagari) = %d, want 6", got)
	}
	if got := Length("abc"); got != 3 {
		t.Errorf("Length(abc) = %d, want 3", got)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "phone", Message: "required"},
	}
	got := errs.Error()
	want := "email: invalid; phone: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "phone", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"email": "invalid", "phone": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
