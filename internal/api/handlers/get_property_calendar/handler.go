package get_property_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/tomrobak/vacaflow-booking-service/internal/api/handlers"
	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
	getCalendar "github.com/tomrobak/vacaflow-booking-service/internal/usecase/get_calendar"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgInvalidMonth      = "некорректный параметр month, ожидается YYYY-MM"
	msgPropertyNotFound  = "объект размещения не найден"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID, err := strconv.ParseInt(vars["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/calendar - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	month, err := time.Parse(domain.MonthFormat, r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /properties/{id}/calendar - Invalid month: property_id=%d, error=%v", propertyID, err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		PropertyID: propertyID,
		Month:      month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/calendar - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/calendar - Invalid input: property_id=%d, error=%v", propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /properties/{id}/calendar - Failed to build calendar: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/calendar - Calendar built: property_id=%d, month=%s, days=%d",
		propertyID, result.Month.Format(domain.MonthFormat), len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
