// Package get_services отдает статический каталог услуг для первого шага формы
package get_services

import (
	"net/http"

	"github.com/TPD2004/kenton-car-wash/internal/api/handlers"
	"github.com/TPD2004/kenton-car-wash/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /services - Catalog requested")
	handlers.RespondJSON(w, http.StatusOK, FromCatalog(domain.ServiceCatalog))
}
