package properties

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
	propertyRepo "github.com/tomrobak/vacaflow-booking-service/internal/infra/storage/property"
	"github.com/tomrobak/vacaflow-booking-service/internal/service/properties/models"
)

// Service сервис для работы с объектами размещения
type Service struct {
	propertyRepo PropertyRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса объектов
func NewService(propertyRepo PropertyRepository, logger Logger) *Service {
	return &Service{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// Create создает новый объект размещения
func (s *Service) Create(ctx context.Context, req *models.CreatePropertyRequest) (*models.PropertyResponse, error) {
	s.logger.Info("Create: creating property %q for host=%d", req.Name, req.HostID)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	property, err := req.ToDomainProperty()
	if err != nil {
		s.logger.Warn("Create: invalid dates for property %q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if property.AvailableTo.Before(property.AvailableFrom) {
		s.logger.Warn("Create: availableTo before availableFrom for property %q", req.Name)
		return nil, fmt.Errorf("%w: availableTo must not be before availableFrom", ErrInvalidInput)
	}

	created, err := s.propertyRepo.Create(ctx, property)
	if err != nil {
		s.logger.Error("Create: repository error for property %q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created property id=%d", created.ID)
	return models.FromDomainProperty(created), nil
}

// GetByID получает объект по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PropertyResponse, error) {
	s.logger.Info("GetByID: fetching property id=%d", id)

	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("GetByID: property id=%d not found", id)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("GetByID: repository error for property id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProperty(property), nil
}

// List получает все объекты размещения
func (s *Service) List(ctx context.Context) (*models.PropertyListResponse, error) {
	s.logger.Info("List: fetching properties")

	properties, err := s.propertyRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d properties", len(properties))
	return models.FromDomainPropertyList(properties), nil
}

// Update обновляет объект размещения
// Доступно только хосту объекта
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdatePropertyRequest) (*models.PropertyResponse, error) {
	s.logger.Info("Update: updating property id=%d by guest=%d", id, req.GuestID)

	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("Update: property id=%d not found", id)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("Update: repository error for property id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if !property.IsHost(req.GuestID) {
		s.logger.Warn("Update: guest=%d is not the host of property=%d", req.GuestID, id)
		return nil, ErrAccessDenied
	}

	if err := req.ApplyTo(property); err != nil {
		s.logger.Warn("Update: invalid dates for property id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateProperty(property); err != nil {
		s.logger.Warn("Update: validation failed for property id=%d: %v", id, err)
		return nil, err
	}

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("Update: property id=%d not found during update", id)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("Update: repository error for property id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated property id=%d", id)
	return models.FromDomainProperty(property), nil
}

// Валидация

func validateCreateRequest(req *models.CreatePropertyRequest) error {
	if req.HostID <= 0 {
		return fmt.Errorf("%w: hostId must be positive", ErrInvalidInput)
	}

	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if req.NightlyRate <= 0 {
		return fmt.Errorf("%w: nightlyRate must be positive", ErrInvalidInput)
	}

	if req.MaxGuests <= 0 {
		return fmt.Errorf("%w: maxGuests must be positive", ErrInvalidInput)
	}

	return nil
}

func validateProperty(p *domain.Property) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if p.NightlyRate <= 0 {
		return fmt.Errorf("%w: nightlyRate must be positive", ErrInvalidInput)
	}

	if p.MaxGuests <= 0 {
		return fmt.Errorf("%w: maxGuests must be positive", ErrInvalidInput)
	}

	if p.AvailableTo.Before(p.AvailableFrom) {
		return fmt.Errorf("%w: availableTo must not be before availableFrom", ErrInvalidInput)
	}

	return nil
}
