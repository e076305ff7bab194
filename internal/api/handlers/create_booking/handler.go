package create_booking

import (
	"errors"
	"net/http"

	"github.com/tomrobak/vacaflow-booking-service/internal/api/handlers"
	"github.com/tomrobak/vacaflow-booking-service/internal/api/middleware"
	createBooking "github.com/tomrobak/vacaflow-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingGuestID     = "отсутствует ID гостя"
	msgPropertyNotFound   = "объект размещения не найден"
	msgGuestNotFound      = "гость не найден"
	msgDatesNotAvailable  = "выбранные даты недоступны"
	msgNoNights           = "дата выезда должна быть позже даты заезда"
	msgDateInPast         = "дата заезда в прошлом"
	msgOutsideWindow      = "даты вне окна бронирования объекта"
	msgStayTooLong        = "превышена максимальная длительность проживания"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем guestID из контекста (через middleware Auth)
	guestID, ok := middleware.GetGuestID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing guest ID")
		handlers.RespondUnauthorized(w, msgMissingGuestID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(guestID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDatesNotAvailable):
			h.logger.Warn("POST /bookings - Dates not available: guest_id=%d, property_id=%d", guestID, req.PropertyID)
			handlers.RespondError(w, http.StatusConflict, msgDatesNotAvailable)

		case errors.Is(err, createBooking.ErrPropertyNotFound):
			h.logger.Warn("POST /bookings - Property not found: property_id=%d", req.PropertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, createBooking.ErrGuestNotFound):
			h.logger.Warn("POST /bookings - Guest not found: guest_id=%d", guestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		case errors.Is(err, createBooking.ErrNoNightsSelected):
			h.logger.Warn("POST /bookings - No nights selected: guest_id=%d, property_id=%d", guestID, req.PropertyID)
			handlers.RespondBadRequest(w, msgNoNights)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Check-in in the past: guest_id=%d, property_id=%d", guestID, req.PropertyID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrOutsideBookableWindow):
			h.logger.Warn("POST /bookings - Outside bookable window: guest_id=%d, property_id=%d", guestID, req.PropertyID)
			handlers.RespondBadRequest(w, msgOutsideWindow)

		case errors.Is(err, createBooking.ErrStayTooLong):
			h.logger.Warn("POST /bookings - Stay too long: guest_id=%d, property_id=%d", guestID, req.PropertyID)
			handlers.RespondBadRequest(w, msgStayTooLong)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: guest_id=%d, error=%v", guestID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: guest_id=%d, property_id=%d, error=%v",
				guestID, req.PropertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, guest_id=%d, property_id=%d",
		result.ID, guestID, req.PropertyID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
