package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tomrobak/vacaflow-booking-service/internal/api/handlers"
)

const (
	// GuestIDHeader заголовок с идентификатором гостя
	GuestIDHeader = "X-Guest-ID"

	msgMissingGuestID = "отсутствует заголовок X-Guest-ID"
	msgInvalidGuestID = "некорректный идентификатор гостя"
)

type guestIDKey struct{}

// Auth middleware извлекает идентификатор гостя из заголовка X-Guest-ID
// и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(GuestIDHeader)
		if header == "" {
			handlers.RespondUnauthorized(w, msgMissingGuestID)
			return
		}

		guestID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || guestID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidGuestID)
			return
		}

		ctx := context.WithValue(r.Context(), guestIDKey{}, guestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetGuestID извлекает идентификатор гостя из контекста
func GetGuestID(ctx context.Context) (int64, bool) {
	guestID, ok := ctx.Value(guestIDKey{}).(int64)
	return guestID, ok
}
