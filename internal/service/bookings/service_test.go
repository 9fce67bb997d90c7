package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TPD2004/kenton-car-wash/internal/domain"
	bookingRepo "github.com/TPD2004/kenton-car-wash/internal/infra/storage/booking"
	"github.com/TPD2004/kenton-car-wash/pkg/types"
)

type fakeRepo struct {
	bookings  []*domain.Booking
	listErr   error
	deleteErr error

	deletedID int64
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeRepo) ListAll(_ context.Context) ([]*domain.Booking, error) {
	return f.bookings, f.listErr
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_ListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("returns bookings in repository order with totals", func(t *testing.T) {
		repo := &fakeRepo{bookings: []*domain.Booking{
			{
				ID:           1,
				CustomerName: "Thabo Mokoena",
				BookingDate:  time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
				StartTime:    types.TimeString("08:00"),
				Status:       domain.StatusConfirmed,
			},
			{
				ID:           2,
				CustomerName: "Anita Naidoo",
				BookingDate:  time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
				StartTime:    types.TimeString("10:00"),
				Status:       domain.StatusConfirmed,
			},
		}}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.ListAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, int64(1), resp.Bookings[0].ID)
		assert.Equal(t, "08:00", resp.Bookings[0].StartTime)
		assert.Equal(t, "2026-09-02", resp.Bookings[0].BookingDate)
	})

	t.Run("empty repository gives empty list", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, nopLogger{})

		resp, err := svc.ListAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		assert.Empty(t, resp.Bookings)
	})

	t.Run("repository failure maps to internal error", func(t *testing.T) {
		svc := NewService(&fakeRepo{listErr: errors.New("boom")}, nopLogger{})

		_, err := svc.ListAll(ctx)

		require.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates to repository", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, nopLogger{})

		require.NoError(t, svc.Delete(ctx, 42))
		assert.Equal(t, int64(42), repo.deletedID)
	})

	t.Run("missing booking maps to not found", func(t *testing.T) {
		svc := NewService(&fakeRepo{deleteErr: bookingRepo.ErrBookingNotFound}, nopLogger{})

		require.ErrorIs(t, svc.Delete(ctx, 99), ErrBookingNotFound)
	})

	t.Run("repository failure maps to internal error", func(t *testing.T) {
		svc := NewService(&fakeRepo{deleteErr: errors.New("boom")}, nopLogger{})

		require.ErrorIs(t, svc.Delete(ctx, 1), ErrInternal)
	})
}
