package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/eduschools/EduSchools-BookingService/internal/api/handlers"
)

type Logger interface {
	Error(format string, v ...interface{})
}

// Recovery превращает панику в хендлере в 500
func Recovery(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("%s %s - panic: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
