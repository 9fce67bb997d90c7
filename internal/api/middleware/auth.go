package middleware

import (
	"net/http"

	"github.com/TPD2004/kenton-car-wash/internal/api/handlers"
)

// SessionVerifier проверяет наличие валидной админ-сессии в запросе
type SessionVerifier interface {
	Verify(r *http.Request) error
}

// AdminAuth middleware, пускающий дальше только запросы с валидной
// админ-сессией. Выпуск сессии - ответственность admin_login.
func AdminAuth(sessions SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := sessions.Verify(r); err != nil {
				handlers.RespondUnauthorized(w, "admin session required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
