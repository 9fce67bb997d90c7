package domain

import (
	"time"

	"github.com/TPD2004/kenton-car-wash/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a customer reservation for a wash slot
type Booking struct {
	ID int64

	// Customer contact details
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	// Optional vehicle/vessel registration
	VehicleReg *string

	// Denormalized service data for history
	ServiceCategory string
	ServiceName     string
	Price           float64

	BookingDate time.Time
	StartTime   types.TimeString // слот вида "HH:00"
	Status      BookingStatus

	CreatedAt time.Time
}

// BlocksSlot returns true if the booking makes its slot unavailable.
// Только подтвержденные бронирования занимают слот; отмененные и
// ожидающие подтверждения - нет.
func (b *Booking) BlocksSlot() bool {
	return b.Status == StatusConfirmed
}

// IsConfirmed returns true if the booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// ParseBookingStatus валидирует и конвертирует строку в BookingStatus
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}
