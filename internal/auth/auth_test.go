package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptAuthenticator(t *testing.T) {
	hash, err := HashSecret("hunter2")
	require.NoError(t, err)

	t.Run("correct secret passes", func(t *testing.T) {
		a, err := NewBcryptAuthenticator(hash)
		require.NoError(t, err)

		require.NoError(t, a.Verify("hunter2"))
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		a, err := NewBcryptAuthenticator(hash)
		require.NoError(t, err)

		require.ErrorIs(t, a.Verify("hunter3"), ErrInvalidSecret)
		require.ErrorIs(t, a.Verify(""), ErrInvalidSecret)
	})

	t.Run("malformed hash is a startup error", func(t *testing.T) {
		_, err := NewBcryptAuthenticator("not-a-bcrypt-hash")
		require.ErrorIs(t, err, ErrBadSecretHash)
	})
}

func testSessionManager(t *testing.T, ttl time.Duration) *SessionManager {
	t.Helper()
	hashKey := make([]byte, 32)
	blockKey := make([]byte, 32)
	for i := range hashKey {
		hashKey[i] = byte(i)
		blockKey[i] = byte(31 - i)
	}
	return NewSessionManager(hashKey, blockKey, ttl)
}

// issueCookie выпускает сессию и возвращает поставленную cookie
func issueCookie(t *testing.T, m *SessionManager) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", nil)
	require.NoError(t, m.Issue(w, r))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestSessionManager(t *testing.T) {
	m := testSessionManager(t, time.Hour)

	t.Run("issued session verifies", func(t *testing.T) {
		cookie := issueCookie(t, m)

		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, "/", cookie.Path)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
		r.AddCookie(cookie)

		require.NoError(t, m.Verify(r))
	})

	t.Run("missing cookie fails", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
		require.ErrorIs(t, m.Verify(r), ErrNoSession)
	})

	t.Run("tampered cookie fails", func(t *testing.T) {
		cookie := issueCookie(t, m)
		cookie.Value = cookie.Value + "x"

		r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
		r.AddCookie(cookie)

		require.ErrorIs(t, m.Verify(r), ErrNoSession)
	})

	t.Run("cookie from a different key set fails", func(t *testing.T) {
		other := NewSessionManager(make([]byte, 32), make([]byte, 32), time.Hour)
		cookie := issueCookie(t, other)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
		r.AddCookie(cookie)

		require.ErrorIs(t, m.Verify(r), ErrNoSession)
	})

	t.Run("clear expires the cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		m.Clear(w)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, -1, cookies[0].MaxAge)
		assert.Empty(t, cookies[0].Value)
	})
}
