package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/staffbook/staffbook-backend-go/internal/domain/auth"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/jwt"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/oauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const handlerTestOTP = "482913"

type fakeAuthService struct {
	requested  []string
	requestErr error
	loggedOut  []string
	google     []string
}

func newFakeAuthService() *fakeAuthService { return &fakeAuthService{} }

func (f *fakeAuthService) RequestOTP(_ context.Context, req auth.RequestOTPRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if f.requestErr != nil {
		return f.requestErr
	}
	f.requested = append(f.requested, req.Mobile)
	return nil
}

func (f *fakeAuthService) VerifyOTP(_ context.Context, req auth.VerifyOTPRequest, _ auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}
	if req.OTP != handlerTestOTP {
		return auth.LoginResponse{}, auth.ErrInvalidOTP
	}
	return auth.LoginResponse{
		TokenResponse: auth.TokenResponse{AccessToken: "access", RefreshToken: "refresh", RefreshTokenExpiresIn: 4102444800},
		OwnerID:       testOwnerID,
		IsNewOwner:    req.Mobile == "919876543210",
	}, nil
}

func (f *fakeAuthService) LoginWithGoogle(_ context.Context, googleID, _ string, _ auth.SessionTrackingRequest) (auth.LoginResponse, error) {
	f.google = append(f.google, googleID)
	return auth.LoginResponse{
		TokenResponse: auth.TokenResponse{AccessToken: "google-access", AccessTokenExpiresIn: 1700000000, RefreshToken: "google-refresh"},
		OwnerID:       testOwnerID,
	}, nil
}

func (f *fakeAuthService) RefreshToken(_ context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if req.RefreshToken != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	return auth.AccessTokenResponse{AccessToken: "new-access"}, nil
}

func (f *fakeAuthService) Logout(_ context.Context, token string) error {
	f.loggedOut = append(f.loggedOut, token)
	return nil
}

type fakeGoogle struct {
	verified bool
}

func (fakeGoogle) GenerateState() (string, error) { return "state-123", nil }

func (fakeGoogle) RedirectURL(state string) string {
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (fakeGoogle) VerifyToken(_ context.Context, code string) (*oauth2.Token, error) {
	if code != "good-code" {
		return nil, errors.New("bad code")
	}
	return &oauth2.Token{AccessToken: "g"}, nil
}

func (g fakeGoogle) VerifyUser(context.Context, *oauth2.Token) (oauth.GoogleInformation, error) {
	return oauth.GoogleInformation{GoogleID: "1098", Email: "meera@example.com", VerifiedEmail: g.verified}, nil
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestRequestOTPHandler(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/otp/request", map[string]string{"mobile": "9876543210"}, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"919876543210"}, ts.auth.requested)

	rec = ts.do(t, http.MethodPost, "/api/v1/auth/otp/request", map[string]string{"mobile": "123"}, false)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/auth/otp/request", `not json`, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestOTPHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{auth.ErrOTPRateLimited, http.StatusTooManyRequests},
		{auth.ErrOTPDelivery, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			ts := newTestServer(t, nil)
			ts.auth.requestErr = tt.err

			rec := ts.do(t, http.MethodPost, "/api/v1/auth/otp/request", map[string]string{"mobile": "9876543210"}, false)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestVerifyOTPHandler(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/otp/verify", map[string]string{"mobile": "9876543210", "otp": handlerTestOTP}, false)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"is_new_owner":true`)

	cookie := findCookie(rec, jwt.RefreshTokenCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "refresh", cookie.Value)
	assert.True(t, cookie.HttpOnly)

	rec = ts.do(t, http.MethodPost, "/api/v1/auth/otp/verify", map[string]string{"mobile": "9123456789", "otp": handlerTestOTP}, false)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/auth/otp/verify", map[string]string{"mobile": "9876543210", "otp": "000000"}, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, findCookie(rec, jwt.RefreshTokenCookieName))
}

func TestRefreshTokenHandler(t *testing.T) {
	ts := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: jwt.RefreshTokenCookieName, Value: "refresh"})
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), "new-access")

	rec = ts.do(t, http.MethodPost, "/api/v1/auth/refresh", map[string]string{"refresh_token": "refresh"}, false)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/auth/refresh", map[string]string{"refresh_token": "stale"}, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/auth/refresh", map[string]string{}, false)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestLogoutHandler(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/logout", nil, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: jwt.RefreshTokenCookieName, Value: "refresh"})
	rec = httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"refresh"}, ts.auth.loggedOut)
	cleared := findCookie(rec, jwt.RefreshTokenCookieName)
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)
}

func TestGoogleLogin_Disabled(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodGet, "/api/v1/auth/login/oauth/google", nil, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGoogleLogin_Redirect(t *testing.T) {
	ts := newTestServer(t, fakeGoogle{verified: true})

	rec := ts.do(t, http.MethodGet, "/api/v1/auth/login/oauth/google", nil, false)
	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "state=state-123")

	state := findCookie(rec, "state")
	require.NotNil(t, state)
	assert.Equal(t, "state-123", state.Value)
	assert.Equal(t, "/api/v1/auth/oauth/callback/google", state.Path)
}

func googleCallback(t *testing.T, ts *testServer, query string, stateCookie string) *url.URL {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/oauth/callback/google?"+query, nil)
	if stateCookie != "" {
		req.AddCookie(&http.Cookie{Name: "state", Value: stateCookie})
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)

	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(loc.String(), "http://localhost:3000/auth/callback/google"))
	return loc
}

func TestGoogleCallback(t *testing.T) {
	ts := newTestServer(t, fakeGoogle{verified: true})

	loc := googleCallback(t, ts, "state=state-123&code=good-code", "state-123")
	assert.Equal(t, "google-access", loc.Query().Get("access_token"))
	assert.Equal(t, "1700000000", loc.Query().Get("expires_in"))
	assert.Equal(t, []string{"1098"}, ts.auth.google)
}

func TestGoogleCallback_Failures(t *testing.T) {
	tests := []struct {
		name     string
		verified bool
		query    string
		cookie   string
		want     string
	}{
		{"denied", true, "error=access_denied", "state-123", "access_denied"},
		{"no cookie", true, "state=state-123&code=good-code", "", "state_cookie_not_found"},
		{"no state param", true, "code=good-code", "state-123", "state_param_empty"},
		{"mismatch", true, "state=other&code=good-code", "state-123", "state_mismatch"},
		{"no code", true, "state=state-123", "state-123", "code_empty"},
		{"bad code", true, "state=state-123&code=bad", "state-123", "token_verification_failed"},
		{"unverified email", false, "state=state-123&code=good-code", "state-123", "email_not_verified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, fakeGoogle{verified: tt.verified})

			loc := googleCallback(t, ts, tt.query, tt.cookie)
			assert.Equal(t, tt.want, loc.Query().Get("error"))
			assert.Empty(t, ts.auth.google)
		})
	}
}
