// Package admin_logout сбрасывает админ-сессию
package admin_logout

import (
	"net/http"

	"github.com/TPD2004/kenton-car-wash/internal/api/handlers"
)

type Handler struct {
	sessions SessionClearer
	logger   Logger
}

func NewHandler(sessions SessionClearer, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)

	h.logger.Info("POST /admin/logout - Admin session cleared for %s", r.RemoteAddr)
	handlers.RespondJSON(w, http.StatusOK, LogoutResponse{Success: true})
}
