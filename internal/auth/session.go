package auth

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

// sessionCookie имя cookie админ-сессии
const sessionCookie = "kcw_admin_session"

// SessionManager выпускает и проверяет подписанные сессионные cookie
// администратора. Cookie шифруется и подписывается securecookie;
// истечение срока проверяется самим securecookie через MaxAge.
type SessionManager struct {
	sc  *securecookie.SecureCookie
	ttl time.Duration
}

// NewSessionManager создает менеджер сессий.
// hashKey подписывает cookie, blockKey шифрует содержимое.
func NewSessionManager(hashKey, blockKey []byte, ttl time.Duration) *SessionManager {
	sc := securecookie.New(hashKey, blockKey)
	sc.MaxAge(int(ttl.Seconds()))
	return &SessionManager{sc: sc, ttl: ttl}
}

// Issue выпускает админ-сессию и ставит cookie
func (m *SessionManager) Issue(w http.ResponseWriter, r *http.Request) error {
	value := map[string]string{"role": "admin"}
	encoded, err := m.sc.Encode(sessionCookie, value)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
	return nil
}

// Verify проверяет наличие валидной админ-сессии в запросе
func (m *SessionManager) Verify(r *http.Request) error {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return ErrNoSession
	}

	value := map[string]string{}
	if err := m.sc.Decode(sessionCookie, c.Value, &value); err != nil {
		return ErrNoSession
	}
	if value["role"] != "admin" {
		return ErrNoSession
	}

	return nil
}

// Clear сбрасывает сессионную cookie
func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
