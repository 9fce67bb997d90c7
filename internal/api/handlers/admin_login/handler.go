// Package admin_login выпускает админ-сессию по общему секрету
package admin_login

import (
	"errors"
	"net/http"

	"github.com/TPD2004/kenton-car-wash/internal/api/handlers"
	"github.com/TPD2004/kenton-car-wash/internal/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSecret      = "incorrect PIN"
)

type Handler struct {
	authenticator auth.Authenticator
	sessions      SessionIssuer
	logger        Logger
}

func NewHandler(authenticator auth.Authenticator, sessions SessionIssuer, logger Logger) *Handler {
	return &Handler{
		authenticator: authenticator,
		sessions:      sessions,
		logger:        logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.authenticator.Verify(req.Pin); err != nil {
		if errors.Is(err, auth.ErrInvalidSecret) {
			// Не логируем сам секрет, только факт отказа
			h.logger.Warn("POST /admin/login - Invalid secret from %s", r.RemoteAddr)
			handlers.RespondUnauthorized(w, msgInvalidSecret)
			return
		}
		h.logger.Error("POST /admin/login - Authenticator error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if err := h.sessions.Issue(w, r); err != nil {
		h.logger.Error("POST /admin/login - Failed to issue session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/login - Admin session issued for %s", r.RemoteAddr)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Success: true})
}
