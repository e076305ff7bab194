package quote_stay

import (
	"time"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
)

// Request модель запроса на расчет стоимости проживания
type Request struct {
	PropertyID int64     // ID объекта размещения
	CheckIn    time.Time // Дата заезда
	CheckOut   time.Time // Дата выезда
	AddonIDs   []int64   // Выбранные дополнения
}

// Response модель ответа с детализацией стоимости
type Response struct {
	PropertyID int64
	CheckIn    time.Time
	CheckOut   time.Time
	Breakdown  domain.PriceBreakdown
}
