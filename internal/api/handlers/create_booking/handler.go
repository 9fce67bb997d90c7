package create_booking

import (
	"errors"
	"net/http"

	"github.com/TPD2004/kenton-car-wash/internal/api/handlers"
	createBooking "github.com/TPD2004/kenton-car-wash/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid booking date or start time, expected YYYY-MM-DD and HH:MM"
	msgIncompleteBooking  = "booking is incomplete: service, date, time slot and contact details are required"
	msgServiceNotFound    = "service not found in catalog"
	msgPriceMismatch      = "price does not match the catalog"
	msgInvalidBookingDate = "booking date is in the past"
	msgClosedDate         = "we are closed on the selected date"
	msgInvalidTimeSlot    = "selected time slot is outside opening hours"
	msgSlotNotAvailable   = "selected time slot is no longer available"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Incomplete booking: %v", err)
			handlers.RespondBadRequest(w, msgIncompleteBooking)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: %s/%s", req.ServiceCategory, req.ServiceName)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrPriceMismatch):
			h.logger.Warn("POST /bookings - Price mismatch: %s/%s", req.ServiceCategory, req.ServiceName)
			handlers.RespondBadRequest(w, msgPriceMismatch)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: %s", req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrClosedDate):
			h.logger.Warn("POST /bookings - Closed date: %s", req.BookingDate)
			handlers.RespondBadRequest(w, msgClosedDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: %s %s", req.BookingDate, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			// Гонка "проверили-отправили": слот заняли между запросом
			// доступности и подтверждением. Клиент перезапрашивает слоты.
			h.logger.Warn("POST /bookings - Slot not available: %s %s", req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.BookingDate, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, date=%s, time=%s",
		result.ID, req.BookingDate, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
