package create_booking

import (
	"time"

	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	GuestID    int64     // ID гостя (из заголовка аутентификации)
	PropertyID int64     // ID объекта размещения
	CheckIn    time.Time // Дата заезда (без времени)
	CheckOut   time.Time // Дата выезда (без времени)
	GuestCount int       // Количество гостей
	AddonIDs   []int64   // Выбранные дополнения (неизвестные id игнорируются)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	Reference  string
	PropertyID int64
	GuestID    int64
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int
	Status     string

	Breakdown domain.PriceBreakdown

	GuestName  *string
	GuestEmail *string
	AddonIDs   []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
