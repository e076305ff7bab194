package get_fee_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tomrobak/vacaflow-booking-service/internal/api/handlers"
	"github.com/tomrobak/vacaflow-booking-service/internal/service/fees"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgPropertyNotFound  = "объект размещения не найден"
)

type Handler struct {
	service FeeService
	logger  Logger
}

func NewHandler(service FeeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/fees
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID, err := strconv.ParseInt(vars["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/fees - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	result, err := h.service.GetEffective(r.Context(), propertyID)
	if err != nil {
		switch {
		case errors.Is(err, fees.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/fees - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		default:
			h.logger.Error("GET /properties/{id}/fees - Failed to get fee config: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/fees - Fee config retrieved successfully: property_id=%d, source=%s",
		propertyID, result.Source)
	handlers.RespondJSON(w, http.StatusOK, result)
}
