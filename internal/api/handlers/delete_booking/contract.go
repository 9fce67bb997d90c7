package delete_booking

import "context"

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BookingsService сервис бронирований админ-панели
type BookingsService interface {
	Delete(ctx context.Context, id int64) error
}
