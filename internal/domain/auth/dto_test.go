package auth

import (
	"testing"

	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestOTPRequest_Validate(t *testing.T) {
	req := RequestOTPRequest{Mobile: "+91 98765 43210"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "919876543210", req.Mobile)

	for _, mobile := range []string{"", "  ", "12345", "5876543210"} {
		req := RequestOTPRequest{Mobile: mobile}
		var verrs validator.ValidationErrors
		require.ErrorAs(t, req.Validate(), &verrs, "mobile %q", mobile)
		assert.Contains(t, verrs.ToMap(), "mobile")
	}
}

func TestVerifyOTPRequest_Validate(t *testing.T) {
	req := VerifyOTPRequest{Mobile: "9876543210", OTP: "1234"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "919876543210", req.Mobile)

	bad := VerifyOTPRequest{Mobile: "98", OTP: "12ab"}
	var verrs validator.ValidationErrors
	require.ErrorAs(t, bad.Validate(), &verrs)
	assert.Contains(t, verrs.ToMap(), "mobile")
	assert.Contains(t, verrs.ToMap(), "otp")
}

func TestRefreshTokenRequest_Validate(t *testing.T) {
	assert.NoError(t, (&RefreshTokenRequest{RefreshToken: "abc"}).Validate())
	assert.Error(t, (&RefreshTokenRequest{}).Validate())
}
