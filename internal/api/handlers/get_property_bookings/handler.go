package get_property_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tomrobak/vacaflow-booking-service/internal/api/handlers"
	"github.com/tomrobak/vacaflow-booking-service/internal/api/middleware"
	"github.com/tomrobak/vacaflow-booking-service/internal/service/bookings"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgInvalidParams     = "некорректные параметры фильтрации"
	msgMissingGuestID    = "отсутствует ID гостя"
	msgPropertyNotFound  = "объект размещения не найден"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID, err := strconv.ParseInt(vars["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/bookings - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	guestID, ok := middleware.GetGuestID(r.Context())
	if !ok {
		h.logger.Warn("GET /properties/{id}/bookings - Missing guest ID")
		handlers.RespondUnauthorized(w, msgMissingGuestID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		propertyID,
		guestID,
		query.Get("startDate"),
		query.Get("endDate"),
		query.Get("status"),
		query.Get("includeCancelled"),
	)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/bookings - Failed to parse params: property_id=%d, error=%v",
			propertyID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetPropertyBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/bookings - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /properties/{id}/bookings - Access denied: property_id=%d, guest_id=%d",
				propertyID, guestID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/bookings - Invalid filter: property_id=%d, error=%v", propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /properties/{id}/bookings - Failed to get bookings: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/bookings - Bookings retrieved successfully: property_id=%d, count=%d",
		propertyID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
