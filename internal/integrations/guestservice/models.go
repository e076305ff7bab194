package guestservice

// Guest модель гостя из GuestService
type Guest struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ErrorResponse модель ошибки от GuestService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
