package create_booking

import (
	"time"

	"github.com/TPD2004/kenton-car-wash/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	VehicleReg *string // Регистрационный номер (опционально)

	ServiceCategory string
	ServiceName     string
	Price           *float64 // Цена из каталога; nil - услуга не выбрана до конца

	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Слот вида "HH:00"
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID int64

	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	VehicleReg    *string

	ServiceCategory string
	ServiceName     string
	Price           float64

	BookingDate time.Time
	StartTime   types.TimeString
	Status      string

	CreatedAt time.Time
}
