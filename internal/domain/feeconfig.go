package domain

import "time"

// PropertyFeeConfig хранимая конфигурация сборов
// Поддерживает иерархию:
// 1. Конфигурация конкретного объекта (property_id задан)
// 2. Глобальная конфигурация (property_id NULL)
// Если нет ни той, ни другой, используются дефолты из config.toml
type PropertyFeeConfig struct {
	ID             int64
	PropertyID     *int64 // NULL = глобальная конфигурация
	CleaningFee    float64
	ServiceFeeRate float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsGlobal returns true if this is the global fee configuration
func (c *PropertyFeeConfig) IsGlobal() bool {
	return c.PropertyID == nil
}

// Rules возвращает правила начисления сборов для расчета стоимости
func (c *PropertyFeeConfig) Rules() FeeConfig {
	return FeeConfig{
		CleaningFee:    c.CleaningFee,
		ServiceFeeRate: c.ServiceFeeRate,
	}
}
