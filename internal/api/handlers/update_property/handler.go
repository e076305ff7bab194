package update_property

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tomrobak/vacaflow-booking-service/internal/api/handlers"
	"github.com/tomrobak/vacaflow-booking-service/internal/api/middleware"
	"github.com/tomrobak/vacaflow-booking-service/internal/service/properties"
	"github.com/tomrobak/vacaflow-booking-service/internal/service/properties/models"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgInvalidBody       = "некорректное тело запроса"
	msgMissingGuestID    = "отсутствует ID гостя"
	msgPropertyNotFound  = "объект размещения не найден"
	msgForbidden         = "доступ запрещен"
	msgInvalidInput      = "некорректные данные объекта"
)

type Handler struct {
	service PropertyService
	logger  Logger
}

func NewHandler(service PropertyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/properties/{propertyId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID, err := strconv.ParseInt(vars["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /properties/{id} - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	guestID, ok := middleware.GetGuestID(r.Context())
	if !ok {
		h.logger.Warn("PUT /properties/{id} - Missing guest ID")
		handlers.RespondUnauthorized(w, msgMissingGuestID)
		return
	}

	var req models.UpdatePropertyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /properties/{id} - Failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	// Право на изменение проверяется по аутентифицированному гостю
	req.GuestID = guestID

	result, err := h.service.Update(r.Context(), propertyID, &req)
	if err != nil {
		switch {
		case errors.Is(err, properties.ErrPropertyNotFound):
			h.logger.Warn("PUT /properties/{id} - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, properties.ErrAccessDenied):
			h.logger.Warn("PUT /properties/{id} - Access denied: property_id=%d, guest_id=%d",
				propertyID, guestID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, properties.ErrInvalidInput):
			h.logger.Warn("PUT /properties/{id} - Invalid property data: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /properties/{id} - Failed to update property: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /properties/{id} - Property updated successfully: property_id=%d", propertyID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
