package models

import (
	"errors"
	"time"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
)

var (
	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
)

// Request модели

// CreatePropertyRequest запрос на создание объекта размещения
type CreatePropertyRequest struct {
	HostID        int64   `json:"hostId"`
	Name          string  `json:"name"`
	NightlyRate   float64 `json:"nightlyRate"`
	MaxGuests     int     `json:"maxGuests"`
	AvailableFrom string  `json:"availableFrom"` // "2025-01-01"
	AvailableTo   string  `json:"availableTo"`   // "2025-12-31"
}

// UpdatePropertyRequest запрос на обновление объекта размещения
type UpdatePropertyRequest struct {
	GuestID       int64    `json:"-"`
	Name          *string  `json:"name,omitempty"`
	NightlyRate   *float64 `json:"nightlyRate,omitempty"`
	MaxGuests     *int     `json:"maxGuests,omitempty"`
	AvailableFrom *string  `json:"availableFrom,omitempty"`
	AvailableTo   *string  `json:"availableTo,omitempty"`
}

// ToDomainProperty конвертирует запрос на создание в domain модель
func (r *CreatePropertyRequest) ToDomainProperty() (*domain.Property, error) {
	from, err := time.Parse(domain.DateFormat, r.AvailableFrom)
	if err != nil {
		return nil, ErrInvalidDate
	}

	to, err := time.Parse(domain.DateFormat, r.AvailableTo)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return &domain.Property{
		HostID:        r.HostID,
		Name:          r.Name,
		NightlyRate:   r.NightlyRate,
		MaxGuests:     r.MaxGuests,
		AvailableFrom: from,
		AvailableTo:   to,
	}, nil
}

// ApplyTo накладывает заполненные поля запроса на существующий объект
func (r *UpdatePropertyRequest) ApplyTo(property *domain.Property) error {
	if r.Name != nil {
		property.Name = *r.Name
	}

	if r.NightlyRate != nil {
		property.NightlyRate = *r.NightlyRate
	}

	if r.MaxGuests != nil {
		property.MaxGuests = *r.MaxGuests
	}

	if r.AvailableFrom != nil {
		from, err := time.Parse(domain.DateFormat, *r.AvailableFrom)
		if err != nil {
			return ErrInvalidDate
		}
		property.AvailableFrom = from
	}

	if r.AvailableTo != nil {
		to, err := time.Parse(domain.DateFormat, *r.AvailableTo)
		if err != nil {
			return ErrInvalidDate
		}
		property.AvailableTo = to
	}

	return nil
}

// Response модели

// PropertyResponse ответ с данными объекта размещения
type PropertyResponse struct {
	ID            int64     `json:"id"`
	HostID        int64     `json:"hostId"`
	Name          string    `json:"name"`
	NightlyRate   float64   `json:"nightlyRate"`
	MaxGuests     int       `json:"maxGuests"`
	AvailableFrom string    `json:"availableFrom"`
	AvailableTo   string    `json:"availableTo"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PropertyListResponse ответ со списком объектов
type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
}

// Методы конвертации

// FromDomainProperty конвертирует domain модель в DTO
func FromDomainProperty(p *domain.Property) *PropertyResponse {
	if p == nil {
		return nil
	}

	return &PropertyResponse{
		ID:            p.ID,
		HostID:        p.HostID,
		Name:          p.Name,
		NightlyRate:   p.NightlyRate,
		MaxGuests:     p.MaxGuests,
		AvailableFrom: p.AvailableFrom.Format(domain.DateFormat),
		AvailableTo:   p.AvailableTo.Format(domain.DateFormat),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromDomainPropertyList конвертирует список domain моделей в DTO
func FromDomainPropertyList(properties []*domain.Property) *PropertyListResponse {
	result := &PropertyListResponse{
		Properties: make([]PropertyResponse, 0, len(properties)),
	}

	for _, p := range properties {
		if resp := FromDomainProperty(p); resp != nil {
			result.Properties = append(result.Properties, *resp)
		}
	}

	return result
}
