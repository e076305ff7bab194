package quote_stay

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tomrobak/vacaflow-booking-service/internal/api/handlers"
	quoteStay "github.com/tomrobak/vacaflow-booking-service/internal/usecase/quote_stay"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgInvalidParams     = "некорректные параметры checkIn/checkOut/addonIds"
	msgPropertyNotFound  = "объект размещения не найден"
)

type Handler struct {
	useCase QuoteStayUseCase
	logger  Logger
}

func NewHandler(useCase QuoteStayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID, err := strconv.ParseInt(vars["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/quote - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(
		propertyID,
		query.Get("checkIn"),
		query.Get("checkOut"),
		query.Get("addonIds"),
	)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/quote - Failed to parse params: property_id=%d, error=%v", propertyID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteStay.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/quote - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, quoteStay.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/quote - Invalid input: property_id=%d, error=%v", propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /properties/{id}/quote - Failed to quote stay: property_id=%d, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/quote - Quote calculated: property_id=%d, nights=%d, total=%.2f",
		propertyID, result.Breakdown.Nights, result.Breakdown.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
