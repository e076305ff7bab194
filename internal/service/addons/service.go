package addons

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
)

var (
	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// AddonRepository интерфейс репозитория каталога дополнений
type AddonRepository interface {
	ListActive(ctx context.Context) ([]*domain.Addon, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AddonResponse ответ с данными дополнения
type AddonResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// AddonListResponse ответ с каталогом дополнений
type AddonListResponse struct {
	Addons []AddonResponse `json:"addons"`
}

// Service сервис каталога дополнений
type Service struct {
	addonRepo AddonRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса дополнений
func NewService(addonRepo AddonRepository, logger Logger) *Service {
	return &Service{
		addonRepo: addonRepo,
		logger:    logger,
	}
}

// List получает каталог активных дополнений
func (s *Service) List(ctx context.Context) (*AddonListResponse, error) {
	addons, err := s.addonRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := &AddonListResponse{
		Addons: make([]AddonResponse, 0, len(addons)),
	}
	for _, a := range addons {
		result.Addons = append(result.Addons, AddonResponse{
			ID:       a.ID,
			Name:     a.Name,
			Price:    a.Price,
			Category: a.Category,
		})
	}

	s.logger.Info("List: successfully fetched %d addons", len(result.Addons))
	return result, nil
}
