package quote_stay

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
	feeRepo "github.com/tomrobak/vacaflow-booking-service/internal/infra/storage/feeconfig"
	propertyRepo "github.com/tomrobak/vacaflow-booking-service/internal/infra/storage/property"
)

// UseCase use case для расчета стоимости проживания
// Расчет чистый и повторяемый: тот же запрос всегда дает ту же детализацию
type UseCase struct {
	propertyRepo PropertyRepository
	addonRepo    AddonRepository
	feeRepo      FeeConfigRepository
	defaultFees  domain.FeeConfig
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	propertyRepo PropertyRepository,
	addonRepo AddonRepository,
	feeRepo FeeConfigRepository,
	defaultFees domain.FeeConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		propertyRepo: propertyRepo,
		addonRepo:    addonRepo,
		feeRepo:      feeRepo,
		defaultFees:  defaultFees,
		logger:       logger,
	}
}

// Execute выполняет use case расчета стоимости
// Диапазон без ночей (checkOut <= checkIn) дает нулевую детализацию,
// а не ошибку: выбор корректного диапазона остается на вызывающей стороне
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteStay: property=%d, checkIn=%s, checkOut=%s, addons=%d",
		req.PropertyID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), len(req.AddonIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteStay: validation failed: %v", err)
		return nil, err
	}

	stay := domain.NewDateRange(req.CheckIn, req.CheckOut)

	// 2. Получаем объект размещения
	property, err := uc.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("QuoteStay: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("QuoteStay: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 3. Получаем конфигурацию сборов с учетом иерархии
	fees := uc.defaultFees
	feeConfig, err := uc.feeRepo.GetWithHierarchy(ctx, req.PropertyID)
	if err != nil && !errors.Is(err, feeRepo.ErrFeeConfigNotFound) {
		uc.logger.Error("QuoteStay: failed to get fee config: %v", err)
		return nil, fmt.Errorf("%w: failed to get fee config: %v", ErrInternal, err)
	}
	if feeConfig != nil {
		fees = feeConfig.Rules()
	}

	// 4. Получаем каталог дополнений
	catalog, err := uc.addonRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("QuoteStay: failed to get addon catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get addon catalog: %v", ErrInternal, err)
	}

	// 5. Рассчитываем детализацию стоимости
	breakdown := domain.CalculateQuote(property.NightlyRate, stay, req.AddonIDs, catalog, fees)

	uc.logger.Info("QuoteStay: property=%d nights=%d total=%.2f",
		req.PropertyID, breakdown.Nights, breakdown.Total)

	return &Response{
		PropertyID: req.PropertyID,
		CheckIn:    stay.CheckIn,
		CheckOut:   stay.CheckOut,
		Breakdown:  breakdown,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	return nil
}
