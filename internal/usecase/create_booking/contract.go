package create_booking

import (
	"context"
	"time"

	"github.com/TPD2004/kenton-car-wash/internal/domain"
	"github.com/TPD2004/kenton-car-wash/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetBookedTimes возвращает start_time подтвержденных бронирований на дату;
	// внутри транзакции блокирует строки (FOR UPDATE)
	GetBookedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
