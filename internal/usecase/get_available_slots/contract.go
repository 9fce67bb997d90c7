package get_available_slots

import (
	"context"
	"time"

	"github.com/TPD2004/kenton-car-wash/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetBookedTimes возвращает start_time подтвержденных бронирований на дату
	GetBookedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
