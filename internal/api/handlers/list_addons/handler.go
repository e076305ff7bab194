package list_addons

import (
	"net/http"

	"github.com/tomrobak/vacaflow-booking-service/internal/api/handlers"
)

type Handler struct {
	service AddonService
	logger  Logger
}

func NewHandler(service AddonService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/addons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /addons - Failed to list addons: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /addons - Addons retrieved successfully: count=%d", len(result.Addons))
	handlers.RespondJSON(w, http.StatusOK, result)
}
