package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeVerifier struct {
	err error
}

func (f *fakeVerifier) Verify(_ *http.Request) error {
	return f.err
}

func TestAdminAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid session passes through", func(t *testing.T) {
		mw := AdminAuth(&fakeVerifier{})
		w := httptest.NewRecorder()

		mw(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing session is rejected with 401", func(t *testing.T) {
		mw := AdminAuth(&fakeVerifier{err: errors.New("no session")})
		w := httptest.NewRecorder()

		mw(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
