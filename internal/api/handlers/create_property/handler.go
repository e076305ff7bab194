package create_property

import (
	"errors"
	"net/http"

	"github.com/tomrobak/vacaflow-booking-service/internal/api/handlers"
	"github.com/tomrobak/vacaflow-booking-service/internal/api/middleware"
	"github.com/tomrobak/vacaflow-booking-service/internal/service/properties"
	"github.com/tomrobak/vacaflow-booking-service/internal/service/properties/models"
)

const (
	msgInvalidBody    = "некорректное тело запроса"
	msgMissingGuestID = "отсутствует ID гостя"
	msgInvalidInput   = "некорректные данные объекта"
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

// Handle POST /api/v1/properties
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guestID, ok := middleware.GetGuestID(r.Context())
	if !ok {
		h.logger.Warn("POST /properties - Missing guest ID")
		handlers.RespondUnauthorized(w, msgMissingGuestID)
		return
	}

	var req models.CreatePropertyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /properties - Failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	// Владельцем становится аутентифицированный гость, hostId из тела игнорируется
	req.HostID = guestID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, properties.ErrInvalidInput):
			h.logger.Warn("POST /properties - Invalid property data: host_id=%d, error=%v", guestID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /properties - Failed to create property: host_id=%d, error=%v", guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /properties - Property created successfully: property_id=%d, host_id=%d",
		result.ID, guestID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
