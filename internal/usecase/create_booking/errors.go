package create_booking

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект не найден
	ErrPropertyNotFound = errors.New("property not found")

	// ErrGuestNotFound возвращается, когда гость не найден
	ErrGuestNotFound = errors.New("guest not found")

	// ErrDatesNotAvailable возвращается, когда запрошенные даты заняты
	ErrDatesNotAvailable = errors.New("requested dates are not available")

	// ErrNoNightsSelected возвращается, когда диапазон не охватывает ни одной ночи
	ErrNoNightsSelected = errors.New("range must span at least one night")

	// ErrDateInPast возвращается, когда заезд раньше сегодняшнего дня
	ErrDateInPast = errors.New("check-in date is in the past")

	// ErrOutsideBookableWindow возвращается, когда даты вне окна бронирования объекта
	ErrOutsideBookableWindow = errors.New("dates are outside the property bookable window")

	// ErrStayTooLong возвращается при превышении максимальной длительности проживания
	ErrStayTooLong = errors.New("stay exceeds maximum allowed length")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
