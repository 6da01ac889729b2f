package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestGoogleService(userInfoURL string) *GoogleServiceImpl {
	svc := NewGoogleService("client-id", "client-secret", "http://localhost:8080/api/v1/auth/oauth/callback/google", nil).(*GoogleServiceImpl)
	svc.userInfoURL = userInfoURL
	return svc
}

func TestGenerateState_Unique(t *testing.T) {
	svc := newTestGoogleService("")

	a, err := svc.GenerateState()
	require.NoError(t, err)
	b, err := svc.GenerateState()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 43)
}

func TestRedirectURL(t *testing.T) {
	svc := newTestGoogleService("")

	u, err := url.Parse(svc.RedirectURL("xyz"))
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "xyz", q.Get("state"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Contains(t, q.Get("scope"), "userinfo.email")
}

func TestVerifyUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1098","email":"meera@example.com","verified_email":true}`))
	}))
	defer srv.Close()

	svc := newTestGoogleService(srv.URL)
	info, err := svc.VerifyUser(context.Background(), &oauth2.Token{AccessToken: "access-123", TokenType: "Bearer"})
	require.NoError(t, err)
	assert.Equal(t, GoogleInformation{GoogleID: "1098", Email: "meera@example.com", VerifiedEmail: true}, info)
}

func TestVerifyUser_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc := newTestGoogleService(srv.URL)
	_, err := svc.VerifyUser(context.Background(), &oauth2.Token{AccessToken: "expired"})
	assert.Error(t, err)
}
