package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	OAuth2Google OAuth2GoogleConfig
	OTP          OTPConfig
	Redis        RedisConfig
	RateLimit    RateLimitConfig
	Jobs         JobsConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	FrontendURL    string
	AllowedOrigins []string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// Enabled reports whether Google sign-in has been configured.
func (o OAuth2GoogleConfig) Enabled() bool {
	return o.ClientID != "" && o.ClientSecret != "" && o.RedirectURL != ""
}

// OTPConfig selects and configures the OTP sender.
// Provider is either "msg91" or "local".
type OTPConfig struct {
	Provider       string
	MSG91AuthKey   string
	MSG91Template  string
	MSG91BaseURL   string
	CodeLength     int
	CodeTTL        time.Duration
	RequestTimeout time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RateLimitConfig bounds OTP requests per mobile number and auth requests
// per client address.
type RateLimitConfig struct {
	OTPPerMinute float64
	OTPBurst     int
	IPPerMinute  float64
	IPBurst      int
}

// JobsConfig schedules background housekeeping.
type JobsConfig struct {
	TokenPurgeInterval time.Duration
	// TokenRetention keeps expired and revoked refresh tokens this long
	// before they are deleted.
	TokenRetention time.Duration
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, reading configuration from environment")
	}
}

// LoadDatabase reads only the database settings, for tools that need no
// other configuration.
func LoadDatabase() (DatabaseConfig, error) {
	loadDotEnv()

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staffbook"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}, nil
}

func Load() (*Config, error) {
	config := &Config{}

	db, err := LoadDatabase()
	if err != nil {
		return nil, err
	}
	config.Database = db

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}
	if len(config.App.AllowedOrigins) == 0 {
		config.App.AllowedOrigins = []string{config.App.FrontendURL}
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// OAuth2 Google configuration, optional
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		Scopes:       getEnvSlice("GOOGLE_SCOPES"),
	}
	if len(config.OAuth2Google.Scopes) == 0 {
		config.OAuth2Google.Scopes = []string{
			"https://www.googleapis.com/auth/userinfo.email",
		}
	}

	// OTP configuration
	codeLength, err := strconv.Atoi(getEnv("OTP_CODE_LENGTH", "6"))
	if err != nil {
		return nil, fmt.Errorf("invalid OTP_CODE_LENGTH: %w", err)
	}
	codeTTL, err := time.ParseDuration(getEnv("OTP_CODE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid OTP_CODE_TTL: %w", err)
	}
	otpTimeout, err := time.ParseDuration(getEnv("OTP_REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid OTP_REQUEST_TIMEOUT: %w", err)
	}

	config.OTP = OTPConfig{
		Provider:       strings.ToLower(getEnv("OTP_PROVIDER", "local")),
		MSG91AuthKey:   getEnv("MSG91_AUTH_KEY", ""),
		MSG91Template:  getEnv("MSG91_TEMPLATE_ID", ""),
		MSG91BaseURL:   getEnv("MSG91_BASE_URL", "https://control.msg91.com"),
		CodeLength:     codeLength,
		CodeTTL:        codeTTL,
		RequestTimeout: otpTimeout,
	}

	// Redis configuration
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	config.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	}

	// Rate limit configuration
	otpPerMinute, err := strconv.ParseFloat(getEnv("OTP_RATE_PER_MINUTE", "1"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP_RATE_PER_MINUTE: %w", err)
	}
	otpBurst, err := strconv.Atoi(getEnv("OTP_RATE_BURST", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid OTP_RATE_BURST: %w", err)
	}

	ipPerMinute, err := strconv.ParseFloat(getEnv("AUTH_RATE_PER_MINUTE", "30"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_RATE_PER_MINUTE: %w", err)
	}
	ipBurst, err := strconv.Atoi(getEnv("AUTH_RATE_BURST", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_RATE_BURST: %w", err)
	}

	config.RateLimit = RateLimitConfig{
		OTPPerMinute: otpPerMinute,
		OTPBurst:     otpBurst,
		IPPerMinute:  ipPerMinute,
		IPBurst:      ipBurst,
	}

	purgeInterval, err := time.ParseDuration(getEnv("TOKEN_PURGE_INTERVAL", "6h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_PURGE_INTERVAL: %w", err)
	}
	retention, err := time.ParseDuration(getEnv("TOKEN_RETENTION", "720h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_RETENTION: %w", err)
	}
	config.Jobs = JobsConfig{
		TokenPurgeInterval: purgeInterval,
		TokenRetention:     retention,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.ParseDuration(c.JWT.RefreshExpiration); err != nil {
		return fmt.Errorf("invalid JWT_REFRESH_EXPIRATION_TIME: %w", err)
	}

	switch c.OTP.Provider {
	case "msg91":
		if c.OTP.MSG91AuthKey == "" {
			return fmt.Errorf("MSG91_AUTH_KEY is required when OTP_PROVIDER=msg91")
		}
		if c.OTP.MSG91Template == "" {
			return fmt.Errorf("MSG91_TEMPLATE_ID is required when OTP_PROVIDER=msg91")
		}
	case "local":
		if c.OTP.CodeLength < 4 || c.OTP.CodeLength > 10 {
			return fmt.Errorf("OTP_CODE_LENGTH must be between 4 and 10")
		}
	default:
		return fmt.Errorf("unsupported OTP_PROVIDER: %s", c.OTP.Provider)
	}

	if c.RateLimit.OTPPerMinute <= 0 || c.RateLimit.OTPBurst <= 0 {
		return fmt.Errorf("OTP rate limit must be positive")
	}
	if c.RateLimit.IPPerMinute <= 0 || c.RateLimit.IPBurst <= 0 {
		return fmt.Errorf("auth rate limit must be positive")
	}
	if c.Jobs.TokenPurgeInterval <= 0 || c.Jobs.TokenRetention < 0 {
		return fmt.Errorf("TOKEN_PURGE_INTERVAL must be positive and TOKEN_RETENTION not negative")
	}
	return nil
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return c.Database.URL()
}

func (d DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
