package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffbook/staffbook-backend-go/internal/handler/http/middleware"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/jwt"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/metrics"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/ratelimit"
)

type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	Metrics        *metrics.Metrics
	// AuthLimiter throttles the unauthenticated auth endpoints per client address.
	AuthLimiter *ratelimit.KeyedLimiter
}

type Handlers struct {
	Auth            AuthHandler
	Owner           OwnerHandler
	ServiceProvider ServiceProviderHandler
	Attendance      AttendanceHandler
	Salary          SalaryHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if cfg.AuthLimiter != nil {
					r.Use(middleware.RateLimitByIP(cfg.AuthLimiter))
				}
				r.Post("/otp/request", h.Auth.RequestOTP)
				r.Post("/otp/verify", h.Auth.VerifyOTP)
			})
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/login/oauth/google", h.Auth.LoginWithGoogle)
			r.Get("/oauth/callback/google", h.Auth.OAuthCallbackGoogle)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/owners/me", func(r chi.Router) {
				r.Get("/", h.Owner.GetProfile)
				r.Put("/", h.Owner.UpdateProfile)
			})

			r.Route("/service-providers", func(r chi.Router) {
				r.Get("/", h.ServiceProvider.List)
				r.Post("/", h.ServiceProvider.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.ServiceProvider.Get)
					r.Put("/", h.ServiceProvider.Update)
					r.Get("/salary", h.Salary.Calculate)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", h.Attendance.Submit)
				r.Get("/{date}", h.Attendance.GetByDate)
				r.Get("/monthly/{year}/{month}", h.Attendance.GetMonthly)
				r.Get("/monthly/{year}/{month}/summary", h.Attendance.GetMonthlySummary)
			})
		})
	})
	return r
}
