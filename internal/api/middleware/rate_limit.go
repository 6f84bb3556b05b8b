package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/tekom-dev/TKM-BookingService/internal/api/handlers"
)

const msgTooManyRequests = "Zu viele Buchungsversuche, bitte versuchen Sie es später erneut"

// RateLimiter контракт лимитера запросов
type RateLimiter interface {
	CheckAndConsume(ctx context.Context, key string) (allowed bool, remaining int, err error)
}

// RateLimit ограничивает частоту запросов по IP клиента.
// Оставшийся лимит отдается заголовком X-RateLimit-Remaining.
func RateLimit(limiter RateLimiter, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			allowed, remaining, err := limiter.CheckAndConsume(r.Context(), ip)
			if err != nil {
				logger.Warn("%s %s - Rate limiter error, allowing: %v", r.Method, r.URL.Path, err)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if !allowed {
				logger.Warn("%s %s - Rate limit exceeded for %s", r.Method, r.URL.Path, ip)
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP берет первый адрес из X-Forwarded-For (сервис живет за
// reverse proxy), иначе RemoteAddr без порта.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
