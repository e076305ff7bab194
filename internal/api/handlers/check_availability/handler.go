package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tomrobak/vacaflow-booking-service/internal/api/handlers"
	checkAvailability "github.com/tomrobak/vacaflow-booking-service/internal/usecase/check_availability"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgInvalidParams     = "ожидается параметр date либо пара checkIn+checkOut в формате YYYY-MM-DD"
	msgPropertyNotFound  = "объект размещения не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID, err := strconv.ParseInt(vars["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/availability - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(
		propertyID,
		query.Get("date"),
		query.Get("checkIn"),
		query.Get("checkOut"),
	)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/availability - Failed to parse params: property_id=%d, error=%v",
			propertyID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/availability - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/availability - Invalid input: property_id=%d, error=%v", propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /properties/{id}/availability - Failed to check availability: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/availability - Availability checked: property_id=%d, available=%t",
		propertyID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
