package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
	feeRepo "github.com/tomrobak/vacaflow-booking-service/internal/infra/storage/feeconfig"
	propertyRepo "github.com/tomrobak/vacaflow-booking-service/internal/infra/storage/property"
	guestClient "github.com/tomrobak/vacaflow-booking-service/internal/integrations/guestservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	propertyRepo PropertyRepository
	addonRepo    AddonRepository
	feeRepo      FeeConfigRepository
	guestClient  GuestServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	defaultFees  domain.FeeConfig
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	propertyRepo PropertyRepository,
	addonRepo AddonRepository,
	feeRepo FeeConfigRepository,
	guestClient GuestServiceClient,
	txManager TransactionManager,
	defaultFees domain.FeeConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		addonRepo:    addonRepo,
		feeRepo:      feeRepo,
		guestClient:  guestClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		defaultFees:  defaultFees,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности и вставка выполняются в сериализуемой транзакции
// с блокировкой затронутых броней — иначе две конкурентные брони на одни
// даты прошли бы одинаковую проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: guest=%d, property=%d, checkIn=%s, checkOut=%s, guests=%d",
		req.GuestID, req.PropertyID,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.GuestCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	stay := domain.NewDateRange(req.CheckIn, req.CheckOut)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем объект размещения
	property, err := uc.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("CreateBooking: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("CreateBooking: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 4. Валидация диапазона проживания
	if err := validateRange(stay, now, property); err != nil {
		uc.logger.Warn("CreateBooking: range validation failed: %v", err)
		return nil, err
	}

	// 5. Количество гостей сверх вместимости не отклоняем, только логируем
	if !property.FitsGuests(req.GuestCount) {
		uc.logger.Warn("CreateBooking: guest count %d exceeds property capacity %d, accepting anyway",
			req.GuestCount, property.MaxGuests)
	}

	// 6. Получаем профиль гостя (с graceful degradation)
	var guestName, guestEmail *string
	guest, err := uc.guestClient.GetGuestWithGracefulDegradation(ctx, req.GuestID)
	switch {
	case err == nil:
		guestName = &guest.Name
		guestEmail = &guest.Email
	case errors.Is(err, guestClient.ErrGuestNotFound):
		uc.logger.Warn("CreateBooking: guest id=%d not found", req.GuestID)
		return nil, ErrGuestNotFound
	case errors.Is(err, guestClient.ErrServiceDegraded):
		// Бронирование создается без денормализованных данных гостя
		uc.logger.Warn("CreateBooking: proceeding without guest profile for guest=%d", req.GuestID)
	default:
		uc.logger.Error("CreateBooking: failed to get guest id=%d: %v", req.GuestID, err)
		return nil, fmt.Errorf("%w: failed to get guest: %v", ErrInternal, err)
	}

	// 7. Получаем каталог дополнений
	catalog, err := uc.addonRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get addon catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get addon catalog: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 8. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Получаем конфигурацию сборов с учетом иерархии
		fees := uc.defaultFees
		feeConfig, err := uc.feeRepo.GetWithHierarchy(txCtx, req.PropertyID)
		if err != nil && !errors.Is(err, feeRepo.ErrFeeConfigNotFound) {
			uc.logger.Error("CreateBooking: failed to get fee config: %v", err)
			return fmt.Errorf("%w: failed to get fee config: %v", ErrInternal, err)
		}
		if feeConfig != nil {
			fees = feeConfig.Rules()
			uc.logger.Info("CreateBooking: using fee config id=%d", feeConfig.ID)
		} else {
			uc.logger.Info("CreateBooking: using default fee config for property=%d", req.PropertyID)
		}

		// 8.2. Получаем брони, затрагивающие запрошенный период, с блокировкой (FOR UPDATE)
		filter := domain.PropertyBookingsFilter{
			PropertyID:       req.PropertyID,
			StartDate:        &stay.CheckIn,
			EndDate:          &stay.CheckOut,
			IncludeCancelled: false, // Отмененные даты не занимают
		}

		bookings, err := uc.bookingRepo.GetByPropertyWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 8.3. Проверяем доступность всего диапазона
		if !domain.IsRangeBookable(stay, now, property, bookings) {
			conflicts := domain.FindConflictingBookings(stay, bookings)
			uc.logger.Warn("CreateBooking: dates not available, %d conflicting bookings", len(conflicts))
			return ErrDatesNotAvailable
		}

		// 8.4. Рассчитываем стоимость проживания
		breakdown := domain.CalculateQuote(property.NightlyRate, stay, req.AddonIDs, catalog, fees)

		// 8.5. Создаем бронирование со снимком цены
		booking := &domain.Booking{
			Reference:  uuid.NewString(),
			PropertyID: req.PropertyID,
			GuestID:    req.GuestID,
			Range:      stay,
			GuestCount: req.GuestCount,
			Status:     domain.StatusPending,

			NightlyRate: breakdown.NightlyRate,
			Nights:      breakdown.Nights,
			Subtotal:    breakdown.Subtotal,
			AddonsTotal: breakdown.AddonsTotal,
			CleaningFee: breakdown.CleaningFee,
			ServiceFee:  breakdown.ServiceFee,
			TotalAmount: breakdown.Total,

			// Денормализация данных гостя
			GuestName:  guestName,
			GuestEmail: guestEmail,
			AddonIDs:   knownAddonIDs(req.AddonIDs, catalog),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d reference=%s total=%.2f",
		result.ID, result.Reference, result.TotalAmount)

	return &Response{
		ID:         result.ID,
		Reference:  result.Reference,
		PropertyID: result.PropertyID,
		GuestID:    result.GuestID,
		CheckIn:    result.Range.CheckIn,
		CheckOut:   result.Range.CheckOut,
		GuestCount: result.GuestCount,
		Status:     string(result.Status),
		Breakdown: domain.PriceBreakdown{
			Nights:      result.Nights,
			NightlyRate: result.NightlyRate,
			Subtotal:    result.Subtotal,
			AddonsTotal: result.AddonsTotal,
			CleaningFee: result.CleaningFee,
			ServiceFee:  result.ServiceFee,
			Total:       result.TotalAmount,
		},
		GuestName:  result.GuestName,
		GuestEmail: result.GuestEmail,
		AddonIDs:   result.AddonIDs,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}

// knownAddonIDs оставляет только id, существующие в каталоге
// Сохраняем в бронь то, что реально вошло в расчет стоимости
func knownAddonIDs(selected []int64, catalog []*domain.Addon) []int64 {
	if len(selected) == 0 {
		return []int64{}
	}

	known := make(map[int64]bool, len(catalog))
	for _, addon := range catalog {
		known[addon.ID] = true
	}

	result := make([]int64, 0, len(selected))
	seen := make(map[int64]bool, len(selected))
	for _, id := range selected {
		if known[id] && !seen[id] {
			result = append(result, id)
			seen[id] = true
		}
	}

	return result
}
