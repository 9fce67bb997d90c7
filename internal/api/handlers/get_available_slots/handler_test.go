package get_available_slots

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/TPD2004/kenton-car-wash/internal/usecase/get_available_slots"
	"github.com/TPD2004/kenton-car-wash/pkg/types"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error

	lastReq *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, target, nil)

	h.Handle(w, r)
	return w
}

func TestHandler_Handle(t *testing.T) {
	t.Run("returns full slot list with availability flags", func(t *testing.T) {
		uc := &fakeUseCase{resp: &getAvailableSlots.Response{
			Date: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			Slots: []getAvailableSlots.Slot{
				{StartTime: types.TimeString("08:00"), Available: true},
				{StartTime: types.TimeString("09:00"), Available: false},
			},
		}}

		w := doRequest(t, uc, "/api/v1/available-slots?date=2026-09-02")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"date":"2026-09-02"`)
		assert.Contains(t, w.Body.String(), `{"startTime":"08:00","available":true}`)
		assert.Contains(t, w.Body.String(), `{"startTime":"09:00","available":false}`)

		require.NotNil(t, uc.lastReq)
		assert.Equal(t, 2026, uc.lastReq.Date.Year())
	})

	t.Run("closed day renders an empty slot list", func(t *testing.T) {
		uc := &fakeUseCase{resp: &getAvailableSlots.Response{
			Date:  time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
			Slots: []getAvailableSlots.Slot{},
		}}

		w := doRequest(t, uc, "/api/v1/available-slots?date=2026-09-06")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"slots":[]`)
	})

	t.Run("missing date returns 400", func(t *testing.T) {
		uc := &fakeUseCase{}
		w := doRequest(t, uc, "/api/v1/available-slots")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, uc.lastReq)
	})

	t.Run("bad date format returns 400", func(t *testing.T) {
		w := doRequest(t, &fakeUseCase{}, "/api/v1/available-slots?date=02-09-2026")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("use case failure returns 500", func(t *testing.T) {
		w := doRequest(t, &fakeUseCase{err: errors.New("boom")}, "/api/v1/available-slots?date=2026-09-02")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
