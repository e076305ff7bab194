package domain

import "math"

// FeeConfig правила начисления сборов при расчете стоимости проживания
type FeeConfig struct {
	CleaningFee    float64 // Фиксированный сбор за уборку
	ServiceFeeRate float64 // Процент сервисного сбора от subtotal (0.12 = 12%)
}

// PriceBreakdown детализация стоимости проживания
// Производное значение: вычисляется заново при каждом изменении входных данных
// и никогда не хранится отдельно от них
type PriceBreakdown struct {
	Nights      int
	NightlyRate float64
	Subtotal    float64
	AddonsTotal float64
	CleaningFee float64
	ServiceFee  float64
	Total       float64
}

// CalculateQuote вычисляет детализацию стоимости проживания
//
// nights = количество ночей диапазона, subtotal = nights * nightlyRate.
// AddonsTotal — сумма цен выбранных дополнений из каталога; неизвестные id
// молча игнорируются. ServiceFee — процент от subtotal, округленный до целой
// денежной единицы (round half up).
//
// Сборы начисляются только при nights > 0: за несостоявшееся проживание
// уборка и сервисный сбор не берутся. Диапазон без ночей дает нулевую
// детализацию, а не ошибку — валидация диапазона остается на вызывающей стороне.
//
// Функция чистая: не мутирует входные данные и при одинаковых аргументах
// всегда возвращает одинаковый результат
func CalculateQuote(
	nightlyRate float64,
	r DateRange,
	selectedAddonIDs []int64,
	catalog []*Addon,
	fees FeeConfig,
) PriceBreakdown {
	nights := r.Nights()
	if nights <= 0 {
		return PriceBreakdown{NightlyRate: nightlyRate}
	}

	subtotal := float64(nights) * nightlyRate
	addonsTotal := AddonsTotal(selectedAddonIDs, catalog)
	cleaningFee := fees.CleaningFee
	serviceFee := roundHalfUp(subtotal * fees.ServiceFeeRate)

	return PriceBreakdown{
		Nights:      nights,
		NightlyRate: nightlyRate,
		Subtotal:    subtotal,
		AddonsTotal: addonsTotal,
		CleaningFee: cleaningFee,
		ServiceFee:  serviceFee,
		Total:       subtotal + cleaningFee + serviceFee + addonsTotal,
	}
}

// AddonsTotal суммирует цены выбранных дополнений по каталогу
// Неизвестные и повторяющиеся id игнорируются, каждое дополнение
// учитывается не более одного раза
func AddonsTotal(selectedIDs []int64, catalog []*Addon) float64 {
	if len(selectedIDs) == 0 {
		return 0
	}

	selected := make(map[int64]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	total := 0.0
	for _, addon := range catalog {
		if selected[addon.ID] {
			total += addon.Price
		}
	}

	return total
}

// roundHalfUp округляет до ближайшей целой денежной единицы, 0.5 вверх
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
