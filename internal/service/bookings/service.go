package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
	bookingRepo "github.com/tomrobak/vacaflow-booking-service/internal/infra/storage/booking"
	propertyRepo "github.com/tomrobak/vacaflow-booking-service/internal/infra/storage/property"
	"github.com/tomrobak/vacaflow-booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	propertyRepo PropertyRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	propertyRepo PropertyRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - гость может видеть только свое бронирование
// или бронирования собственного объекта (если он хост)
func (s *Service) GetByID(ctx context.Context, id int64, guestID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for guest=%d", id, guestID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	// Проверяем права доступа
	if err := s.checkGuestAccess(ctx, booking, guestID); err != nil {
		s.logger.Warn("GetByID: access denied for guest=%d to booking id=%d", guestID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetGuestBookings получает историю бронирований гостя
// Опционально фильтрует по статусу
func (s *Service) GetGuestBookings(ctx context.Context, req *models.GetGuestBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetGuestBookings: fetching bookings for guest=%d, status=%v", req.GuestID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetGuestBookings: invalid status=%s for guest=%d", *req.Status, req.GuestID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByGuestID(ctx, req.GuestID, domainStatus)
	if err != nil {
		s.logger.Error("GetGuestBookings: repository error for guest=%d: %v", req.GuestID, err)
		return nil, fmt.Errorf("%w: GetGuestBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetGuestBookings: successfully fetched %d bookings for guest=%d", len(bookings), req.GuestID)
	return models.FromDomainBookingList(bookings), nil
}

// GetPropertyBookings получает бронирования объекта с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отмененных броней
// Доступно только хосту объекта
func (s *Service) GetPropertyBookings(ctx context.Context, req *models.GetPropertyBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetPropertyBookings: fetching bookings for property=%d, guest=%d", req.PropertyID, req.GuestID)

	// Проверяем права доступа хоста
	if err := s.checkHostAccess(ctx, req.PropertyID, req.GuestID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetPropertyBookings: invalid filter for property=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByPropertyWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetPropertyBookings: repository error for property=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: GetPropertyBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPropertyBookings: successfully fetched %d bookings for property=%d", len(bookings), req.PropertyID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Гость может отменить свое бронирование, хост - любое бронирование
// своего объекта
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by guest=%d", bookingID, req.GuestID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancellation reason must be at most %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return err
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Отменить может владелец брони или хост объекта
	if booking.GuestID != req.GuestID {
		if err := s.checkHostAccess(ctx, booking.PropertyID, req.GuestID); err != nil {
			s.logger.Warn("Cancel: access denied for guest=%d to cancel booking id=%d", req.GuestID, bookingID)
			return ErrAccessDenied
		}
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Confirm подтверждает бронирование (pending -> confirmed)
// Доступно только хосту объекта
func (s *Service) Confirm(ctx context.Context, bookingID int64, guestID int64) error {
	s.logger.Info("Confirm: confirming booking id=%d by guest=%d", bookingID, guestID)

	booking, err := s.getBooking(ctx, "Confirm", bookingID)
	if err != nil {
		return err
	}

	// Проверяем права доступа (только хост объекта)
	if err := s.checkHostAccess(ctx, booking.PropertyID, guestID); err != nil {
		return err
	}

	// Проверяем допустимость перехода статуса
	if !booking.CanBeConfirmed() {
		s.logger.Warn("Confirm: booking id=%d cannot be confirmed, status=%s", bookingID, booking.Status)
		return ErrCannotConfirm
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusConfirmed); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Confirm: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: successfully confirmed booking id=%d", bookingID)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkGuestAccess проверяет, что гость имеет доступ к бронированию
// Гость видит свое бронирование, хост - бронирования своего объекта
func (s *Service) checkGuestAccess(ctx context.Context, booking *domain.Booking, guestID int64) error {
	if booking.GuestID == guestID {
		return nil
	}

	if err := s.checkHostAccess(ctx, booking.PropertyID, guestID); err != nil {
		// Ошибка уже залогирована в checkHostAccess
		return ErrAccessDenied
	}

	return nil
}

// checkHostAccess проверяет, что гость является хостом объекта
func (s *Service) checkHostAccess(ctx context.Context, propertyID int64, guestID int64) error {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("checkHostAccess: property id=%d not found", propertyID)
			return ErrPropertyNotFound
		}
		s.logger.Error("checkHostAccess: failed to get property id=%d: %v", propertyID, err)
		return fmt.Errorf("%w: checkHostAccess - failed to get property: %v", ErrInternal, err)
	}

	if !property.IsHost(guestID) {
		s.logger.Warn("checkHostAccess: guest=%d is not the host of property=%d", guestID, propertyID)
		return ErrAccessDenied
	}

	return nil
}
