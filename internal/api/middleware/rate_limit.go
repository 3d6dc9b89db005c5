package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/eduschools/EduSchools-BookingService/internal/api/handlers"
)

const msgTooManyRequests = "too many requests, please try again later"

// RateLimit ограничивает отправку форм с одного IP
func RateLimit(requestsPerMinute int) func(http.Handler) http.Handler {
	return httprate.Limit(
		requestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
		}),
	)
}
