package validator

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Length counts characters, not bytes.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(DateLayout, dateStr)
	return date, err == nil
}

// stripPhone removes the separators people usually type into phone numbers.
func stripPhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(phone))
}

// NormalizeMobile turns an Indian mobile number into the 12 digit
// "91XXXXXXXXXX" form expected by the SMS gateway.
// Accepts 10 digits, or the same prefixed with 0, 91 or +91.
func NormalizeMobile(mobile string) (string, bool) {
	m := stripPhone(mobile)
	m = strings.TrimPrefix(m, "+")

	switch {
	case len(m) == 12 && strings.HasPrefix(m, "91"):
		m = m[2:]
	case len(m) == 11 && strings.HasPrefix(m, "0"):
		m = m[1:]
	}

	if len(m) != 10 || !IsNumeric(m) {
		return "", false
	}
	// Indian mobile numbers start with 6, 7, 8 or 9
	if m[0] < '6' {
		return "", false
	}
	return "91" + m, true
}

// IsValidContactNumber accepts 10 to 15 digits with an optional leading '+'.
func IsValidContactNumber(phone string) bool {
	p := strings.TrimPrefix(stripPhone(phone), "+")
	return len(p) >= 10 && len(p) <= 15 && IsNumeric(p)
}

var upiRegex = regexp.MustCompile(`^[a-zA-Z0-9.\-_]{2,256}@[a-zA-Z]{2,64}$`)

// IsValidUPI checks the handle@provider shape of a UPI virtual payment address.
func IsValidUPI(vpa string) bool {
	return upiRegex.MatchString(vpa)
}

// IsValidOTP checks that code is between 4 and 10 digits.
func IsValidOTP(code string) bool {
	return len(code) >= 4 && len(code) <= 10 && IsNumeric(code)
}
