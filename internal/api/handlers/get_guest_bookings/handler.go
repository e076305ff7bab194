package get_guest_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tomrobak/vacaflow-booking-service/internal/api/handlers"
	"github.com/tomrobak/vacaflow-booking-service/internal/api/middleware"
	"github.com/tomrobak/vacaflow-booking-service/internal/service/bookings"
	"github.com/tomrobak/vacaflow-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidGuestID = "некорректный ID гостя"
	msgMissingGuestID = "отсутствует ID гостя"
	msgForbidden      = "доступ запрещен"
	msgInvalidStatus  = "некорректный статус бронирования"
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

// Handle GET /api/v1/guests/{guestId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	guestID, err := strconv.ParseInt(vars["guestId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /guests/{guestId}/bookings - Invalid guest ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return
	}

	authGuestID, ok := middleware.GetGuestID(r.Context())
	if !ok {
		h.logger.Warn("GET /guests/{guestId}/bookings - Missing guest ID")
		handlers.RespondUnauthorized(w, msgMissingGuestID)
		return
	}

	// Гость видит только собственную историю
	if guestID != authGuestID {
		h.logger.Warn("GET /guests/{guestId}/bookings - Access denied: guest_id=%d, auth_guest_id=%d",
			guestID, authGuestID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	// Получаем status из query параметров (опционально)
	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	result, err := h.service.GetGuestBookings(r.Context(), &models.GetGuestBookingsRequest{
		GuestID: guestID,
		Status:  statusPtr,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /guests/{guestId}/bookings - Invalid status: guest_id=%d, status=%s", guestID, status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /guests/{guestId}/bookings - Failed to get bookings: guest_id=%d, error=%v",
				guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /guests/{guestId}/bookings - Bookings retrieved successfully: guest_id=%d, count=%d",
		guestID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
