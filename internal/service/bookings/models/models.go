package models

import (
	"time"

	"github.com/TPD2004/kenton-car-wash/internal/domain"
)

// BookingResponse модель бронирования для админ-панели
type BookingResponse struct {
	ID              int64   `json:"id"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	VehicleReg      *string `json:"vehicleReg,omitempty"`
	ServiceCategory string  `json:"serviceCategory"`
	ServiceName     string  `json:"serviceName"`
	Price           float64 `json:"price"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в модель ответа
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		VehicleReg:      b.VehicleReg,
		ServiceCategory: b.ServiceCategory,
		ServiceName:     b.ServiceName,
		Price:           b.Price,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain.Booking в модель ответа
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: out,
		Total:    len(out),
	}
}
