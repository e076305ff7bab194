package fees

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
	feeRepo "github.com/tomrobak/vacaflow-booking-service/internal/infra/storage/feeconfig"
	propertyRepo "github.com/tomrobak/vacaflow-booking-service/internal/infra/storage/property"
	"github.com/tomrobak/vacaflow-booking-service/internal/service/fees/models"
)

// Service сервис конфигурации сборов
type Service struct {
	feeRepo      FeeConfigRepository
	propertyRepo PropertyRepository
	defaultFees  domain.FeeConfig
	logger       Logger
}

// NewService создает новый экземпляр сервиса сборов
func NewService(
	feeRepo FeeConfigRepository,
	propertyRepo PropertyRepository,
	defaultFees domain.FeeConfig,
	logger Logger,
) *Service {
	return &Service{
		feeRepo:      feeRepo,
		propertyRepo: propertyRepo,
		defaultFees:  defaultFees,
		logger:       logger,
	}
}

// GetEffective получает действующую конфигурацию сборов объекта
// Иерархия: конфигурация объекта -> глобальная -> дефолты из config.toml
func (s *Service) GetEffective(ctx context.Context, propertyID int64) (*models.FeeConfigResponse, error) {
	s.logger.Info("GetEffective: fetching fee config for property=%d", propertyID)

	if err := s.checkPropertyExists(ctx, "GetEffective", propertyID); err != nil {
		return nil, err
	}

	config, err := s.feeRepo.GetWithHierarchy(ctx, propertyID)
	if err != nil {
		if errors.Is(err, feeRepo.ErrFeeConfigNotFound) {
			s.logger.Info("GetEffective: no stored fee config for property=%d, using defaults", propertyID)
			return models.FromDefaults(propertyID, s.defaultFees), nil
		}
		s.logger.Error("GetEffective: repository error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: GetEffective - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetEffective: fee config id=%d for property=%d (global=%t)",
		config.ID, propertyID, config.IsGlobal())
	return models.FromDomainFeeConfig(propertyID, config), nil
}

// Update создает или обновляет конфигурацию сборов объекта
// Доступно только хосту объекта
func (s *Service) Update(ctx context.Context, req *models.UpdateFeeConfigRequest) (*models.FeeConfigResponse, error) {
	s.logger.Info("Update: updating fee config for property=%d by guest=%d: cleaning=%.2f rate=%.4f",
		req.PropertyID, req.GuestID, req.CleaningFee, req.ServiceFeeRate)

	if err := validateFees(req.CleaningFee, req.ServiceFeeRate); err != nil {
		s.logger.Warn("Update: validation failed for property=%d: %v", req.PropertyID, err)
		return nil, err
	}

	// Проверяем права доступа хоста
	property, err := s.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("Update: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("Update: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: Update - failed to get property: %v", ErrInternal, err)
	}

	if !property.IsHost(req.GuestID) {
		s.logger.Warn("Update: guest=%d is not the host of property=%d", req.GuestID, req.PropertyID)
		return nil, ErrAccessDenied
	}

	propertyID := req.PropertyID
	config := &domain.PropertyFeeConfig{
		PropertyID:     &propertyID,
		CleaningFee:    req.CleaningFee,
		ServiceFeeRate: req.ServiceFeeRate,
	}

	updated, err := s.feeRepo.Upsert(ctx, config)
	if err != nil {
		s.logger.Error("Update: repository error for property=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated fee config id=%d for property=%d", updated.ID, req.PropertyID)
	return models.FromDomainFeeConfig(req.PropertyID, updated), nil
}

// Вспомогательные методы

func (s *Service) checkPropertyExists(ctx context.Context, op string, propertyID int64) error {
	_, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("%s: property id=%d not found", op, propertyID)
			return ErrPropertyNotFound
		}
		s.logger.Error("%s: failed to get property id=%d: %v", op, propertyID, err)
		return fmt.Errorf("%w: %s - failed to get property: %v", ErrInternal, op, err)
	}
	return nil
}

// validateFees проверяет границы значений сборов
func validateFees(cleaningFee, serviceFeeRate float64) error {
	if cleaningFee < domain.MinCleaningFee || cleaningFee > domain.MaxCleaningFee {
		return fmt.Errorf("%w: cleaningFee must be between %.2f and %.2f",
			ErrInvalidInput, domain.MinCleaningFee, domain.MaxCleaningFee)
	}

	if serviceFeeRate < domain.MinServiceFeeRate || serviceFeeRate > domain.MaxServiceFeeRate {
		return fmt.Errorf("%w: serviceFeeRate must be between %.2f and %.2f",
			ErrInvalidInput, domain.MinServiceFeeRate, domain.MaxServiceFeeRate)
	}

	return nil
}
