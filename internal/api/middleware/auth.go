package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/tekom-dev/TKM-BookingService/internal/api/handlers"
)

const msgUnauthorized = "Nicht autorisiert"

// BearerAuth пропускает только запросы с заголовком
// "Authorization: Bearer <token>" и совпадающим токеном.
// Используется для админки и крона, у каждого свой секрет.
func BearerAuth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := bearerToken(r)
			if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				logger.Warn("%s %s - Unauthorized", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	return header[len(prefix):], true
}
