package middleware

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/staffbook/staffbook-backend-go/internal/handler/http/response"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/ratelimit"
)

// RateLimitByIP rejects clients whose address has run out of tokens.
func RateLimitByIP(limiter *ratelimit.KeyedLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !limiter.Allow(ip) {
				slog.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
				response.TooManyRequests(w, "Too many requests, try again later", 60)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
