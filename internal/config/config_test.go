package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.AllowedOrigins)
	assert.Equal(t, "local", cfg.OTP.Provider)
	assert.Equal(t, 6, cfg.OTP.CodeLength)
	assert.Equal(t, 5*time.Minute, cfg.OTP.CodeTTL)
	assert.Equal(t, "https://control.msg91.com", cfg.OTP.MSG91BaseURL)
	assert.Equal(t, float64(1), cfg.RateLimit.OTPPerMinute)
	assert.Equal(t, 3, cfg.RateLimit.OTPBurst)
	assert.Equal(t, 6*time.Hour, cfg.Jobs.TokenPurgeInterval)
	assert.Equal(t, 30*24*time.Hour, cfg.Jobs.TokenRetention)
	assert.False(t, cfg.OAuth2Google.Enabled())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("OTP_PROVIDER", "MSG91")
	t.Setenv("MSG91_AUTH_KEY", "key")
	t.Setenv("MSG91_TEMPLATE_ID", "tmpl")
	t.Setenv("GOOGLE_CLIENT_ID", "id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
	t.Setenv("GOOGLE_REDIRECT_URL", "https://api.example/api/v1/auth/oauth/callback/google")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.AllowedOrigins)
	assert.Equal(t, "msg91", cfg.OTP.Provider)
	assert.True(t, cfg.OAuth2Google.Enabled())
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing db password", map[string]string{"DB_PASSWORD": "", "JWT_SECRET_KEY": "x"}},
		{"missing jwt secret", map[string]string{"DB_PASSWORD": "x", "JWT_SECRET_KEY": ""}},
		{"bad access ttl", map[string]string{"DB_PASSWORD": "x", "JWT_SECRET_KEY": "x", "JWT_ACCESS_EXPIRATION_TIME": "soon"}},
		{"msg91 without key", map[string]string{"DB_PASSWORD": "x", "JWT_SECRET_KEY": "x", "OTP_PROVIDER": "msg91"}},
		{"unknown provider", map[string]string{"DB_PASSWORD": "x", "JWT_SECRET_KEY": "x", "OTP_PROVIDER": "carrier-pigeon"}},
		{"zero burst", map[string]string{"DB_PASSWORD": "x", "JWT_SECRET_KEY": "x", "OTP_RATE_BURST": "0"}},
		{"zero purge interval", map[string]string{"DB_PASSWORD": "x", "JWT_SECRET_KEY": "x", "TOKEN_PURGE_INTERVAL": "0s"}},
		{"bad port", map[string]string{"DB_PASSWORD": "x", "JWT_SECRET_KEY": "x", "DB_PORT": "pg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDatabaseURL_EscapesPassword(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", Name: "staffbook", SSLMode: "require"}

	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/staffbook?sslmode=require", d.URL())
}
