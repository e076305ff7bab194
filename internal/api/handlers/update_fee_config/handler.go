package update_fee_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tomrobak/vacaflow-booking-service/internal/api/handlers"
	"github.com/tomrobak/vacaflow-booking-service/internal/api/middleware"
	"github.com/tomrobak/vacaflow-booking-service/internal/service/fees"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgInvalidBody       = "некорректное тело запроса"
	msgMissingGuestID    = "отсутствует ID гостя"
	msgPropertyNotFound  = "объект размещения не найден"
	msgForbidden         = "доступ запрещен"
	msgInvalidFees       = "некорректные значения сборов"
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

// Handle PUT /api/v1/properties/{propertyId}/fees
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID, err := strconv.ParseInt(vars["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /properties/{id}/fees - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	guestID, ok := middleware.GetGuestID(r.Context())
	if !ok {
		h.logger.Warn("PUT /properties/{id}/fees - Missing guest ID")
		handlers.RespondUnauthorized(w, msgMissingGuestID)
		return
	}

	var req UpdateFeeConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /properties/{id}/fees - Failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(propertyID, guestID))
	if err != nil {
		switch {
		case errors.Is(err, fees.ErrPropertyNotFound):
			h.logger.Warn("PUT /properties/{id}/fees - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, fees.ErrAccessDenied):
			h.logger.Warn("PUT /properties/{id}/fees - Access denied: property_id=%d, guest_id=%d",
				propertyID, guestID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, fees.ErrInvalidInput):
			h.logger.Warn("PUT /properties/{id}/fees - Invalid fee values: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidFees)

		default:
			h.logger.Error("PUT /properties/{id}/fees - Failed to update fee config: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /properties/{id}/fees - Fee config updated successfully: property_id=%d, cleaning_fee=%.2f, service_fee_rate=%.4f",
		propertyID, result.CleaningFee, result.ServiceFeeRate)
	handlers.RespondJSON(w, http.StatusOK, result)
}
