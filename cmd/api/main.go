package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/go-redis/redis/v8"
	"github.com/staffbook/staffbook-backend-go/internal/config"
	appHTTP "github.com/staffbook/staffbook-backend-go/internal/handler/http"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/cache"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/cron"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/database"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/jwt"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/metrics"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/oauth"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/otp"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/ratelimit"
	"github.com/staffbook/staffbook-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffbook/staffbook-backend-go/internal/service/attendance"
	serviceAuth "github.com/staffbook/staffbook-backend-go/internal/service/auth"
	ownerService "github.com/staffbook/staffbook-backend-go/internal/service/owner"
	providerService "github.com/staffbook/staffbook-backend-go/internal/service/provider"
	salaryService "github.com/staffbook/staffbook-backend-go/internal/service/salary"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.AppConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffbook"),
		slog.String("env", cfg.Env),
	)
}

func newOTPSender(cfg *config.Config) (otp.Sender, *redis.Client, error) {
	switch cfg.OTP.Provider {
	case "msg91":
		return otp.NewMSG91Client(cfg.OTP.MSG91BaseURL, cfg.OTP.MSG91AuthKey, cfg.OTP.MSG91Template, cfg.OTP.RequestTimeout), nil, nil
	case "local":
		client, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		return otp.NewLocalSender(client, cfg.OTP.CodeLength, cfg.OTP.CodeTTL), client, nil
	default:
		return nil, nil, fmt.Errorf("unsupported OTP provider %q", cfg.OTP.Provider)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.App)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.Options{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	sender, redisClient, err := newOTPSender(cfg)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	m := metrics.New()
	tx := postgresql.NewTransactor(db)

	ownerRepo := postgresql.NewOwnerRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	providerRepo := postgresql.NewServiceProviderRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, cfg.IsProduction())
	if err != nil {
		return fmt.Errorf("init jwt: %w", err)
	}

	var GoogleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		GoogleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	} else {
		slog.Info("Google sign-in disabled")
	}

	otpLimiter := ratelimit.New(cfg.RateLimit.OTPPerMinute, cfg.RateLimit.OTPBurst)
	authService := serviceAuth.NewAuthService(tx, ownerRepo, JWTService, JWTRepository, sender, otpLimiter, m)
	ownerSvc := ownerService.NewOwnerService(ownerRepo)
	providerSvc := providerService.NewServiceProviderService(providerRepo)
	attendanceSvc := attendanceService.NewAttendanceService(tx, attendanceRepo, m)
	salarySvc := salaryService.NewSalaryService(providerRepo, attendanceRepo, m)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Logger:         logger,
			AllowedOrigins: cfg.App.AllowedOrigins,
			Metrics:        m,
			AuthLimiter:    ratelimit.New(cfg.RateLimit.IPPerMinute, cfg.RateLimit.IPBurst),
		},
		JWTService,
		appHTTP.Handlers{
			Auth:            appHTTP.NewAuthHandler(JWTService, authService, GoogleService, strings.TrimRight(cfg.App.FrontendURL, "/"), cfg.IsProduction()),
			Owner:           appHTTP.NewOwnerHandler(ownerSvc),
			ServiceProvider: appHTTP.NewServiceProviderHandler(providerSvc),
			Attendance:      appHTTP.NewAttendanceHandler(attendanceSvc),
			Salary:          appHTTP.NewSalaryHandler(salarySvc),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := cron.NewScheduler(m)
	cron.NewTokenJobs(JWTRepository, cfg.Jobs.TokenRetention).RegisterJobs(scheduler, cfg.Jobs.TokenPurgeInterval)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "otp_provider", cfg.OTP.Provider)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
