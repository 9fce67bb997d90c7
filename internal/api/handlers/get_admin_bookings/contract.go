package get_admin_bookings

import (
	"context"

	"github.com/TPD2004/kenton-car-wash/internal/service/bookings/models"
)

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BookingsService сервис бронирований админ-панели
type BookingsService interface {
	ListAll(ctx context.Context) (*models.BookingListResponse, error)
}
