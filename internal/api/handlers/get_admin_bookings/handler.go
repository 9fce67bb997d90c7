// Package get_admin_bookings отдает полный список бронирований для админ-панели
package get_admin_bookings

import (
	"net/http"

	"github.com/TPD2004/kenton-car-wash/internal/api/handlers"
)

type Handler struct {
	bookingsService BookingsService
	logger          Logger
}

func NewHandler(bookingsService BookingsService, logger Logger) *Handler {
	return &Handler{
		bookingsService: bookingsService,
		logger:          logger,
	}
}

// Handle GET /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.bookingsService.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/bookings - Service error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Returned %d bookings", resp.Total)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
