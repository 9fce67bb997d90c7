package create_booking

import (
	"time"

	"github.com/TPD2004/kenton-car-wash/internal/domain"
	createBooking "github.com/TPD2004/kenton-car-wash/internal/usecase/create_booking"
	"github.com/TPD2004/kenton-car-wash/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	VehicleReg    *string `json:"vehicleReg,omitempty"`

	ServiceCategory string   `json:"serviceCategory"`
	ServiceName     string   `json:"serviceName"`
	Price           *float64 `json:"price"`

	BookingDate string `json:"bookingDate"` // "2025-10-15"
	StartTime   string `json:"startTime"`   // "10:00"
}

// BookingResponse HTTP response model
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		VehicleReg:      r.VehicleReg,
		ServiceCategory: r.ServiceCategory,
		ServiceName:     r.ServiceName,
		Price:           r.Price,
		Date:            bookingDate,
		StartTime:       startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CustomerName:    resp.CustomerName,
		CustomerEmail:   resp.CustomerEmail,
		CustomerPhone:   resp.CustomerPhone,
		VehicleReg:      resp.VehicleReg,
		ServiceCategory: resp.ServiceCategory,
		ServiceName:     resp.ServiceName,
		Price:           resp.Price,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
