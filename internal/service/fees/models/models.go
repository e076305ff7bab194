package models

import (
	"time"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
)

// UpdateFeeConfigRequest запрос на обновление конфигурации сборов объекта
type UpdateFeeConfigRequest struct {
	GuestID        int64   `json:"guestId"`
	PropertyID     int64   `json:"propertyId"`
	CleaningFee    float64 `json:"cleaningFee"`
	ServiceFeeRate float64 `json:"serviceFeeRate"`
}

// FeeConfigResponse ответ с действующей конфигурацией сборов
type FeeConfigResponse struct {
	PropertyID     int64   `json:"propertyId"`
	CleaningFee    float64 `json:"cleaningFee"`
	ServiceFeeRate float64 `json:"serviceFeeRate"`
	// Источник конфигурации: "property", "global" или "default"
	Source string `json:"source"`

	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Источники конфигурации сборов
const (
	SourceProperty = "property"
	SourceGlobal   = "global"
	SourceDefault  = "default"
)

// FromDomainFeeConfig конвертирует хранимую конфигурацию в DTO
func FromDomainFeeConfig(propertyID int64, c *domain.PropertyFeeConfig) *FeeConfigResponse {
	source := SourceProperty
	if c.IsGlobal() {
		source = SourceGlobal
	}

	updatedAt := c.UpdatedAt
	return &FeeConfigResponse{
		PropertyID:     propertyID,
		CleaningFee:    c.CleaningFee,
		ServiceFeeRate: c.ServiceFeeRate,
		Source:         source,
		UpdatedAt:      &updatedAt,
	}
}

// FromDefaults конвертирует дефолтные правила из config.toml в DTO
func FromDefaults(propertyID int64, fees domain.FeeConfig) *FeeConfigResponse {
	return &FeeConfigResponse{
		PropertyID:     propertyID,
		CleaningFee:    fees.CleaningFee,
		ServiceFeeRate: fees.ServiceFeeRate,
		Source:         SourceDefault,
	}
}
