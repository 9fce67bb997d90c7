package delete_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/TPD2004/kenton-car-wash/internal/service/bookings"
)

type fakeService struct {
	err error

	deletedID int64
	calls     int
}

func (f *fakeService) Delete(_ context.Context, id int64) error {
	f.calls++
	f.deletedID = id
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doDelete(t *testing.T, svc *fakeService, bookingID string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(svc, nopLogger{})
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/bookings/"+bookingID, nil)
	r = mux.SetURLVars(r, map[string]string{"bookingId": bookingID})

	h.Handle(w, r)
	return w
}

func TestHandler_Handle(t *testing.T) {
	t.Run("existing booking is deleted", func(t *testing.T) {
		svc := &fakeService{}

		w := doDelete(t, svc, "42")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(42), svc.deletedID)
		assert.Contains(t, w.Body.String(), `"success":true`)
	})

	t.Run("unknown booking returns 404", func(t *testing.T) {
		svc := &fakeService{err: bookings.ErrBookingNotFound}

		w := doDelete(t, svc, "99")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id returns 400 without a service call", func(t *testing.T) {
		svc := &fakeService{}

		w := doDelete(t, svc, "abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, svc.calls)
	})

	t.Run("non-positive id returns 400", func(t *testing.T) {
		svc := &fakeService{}

		w := doDelete(t, svc, "0")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, svc.calls)
	})

	t.Run("service failure returns 500", func(t *testing.T) {
		w := doDelete(t, &fakeService{err: errors.New("boom")}, "42")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
