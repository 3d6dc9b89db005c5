package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS разрешает запросы с маркетингового сайта
func CORS(allowedOrigins []string, maxAge int) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         maxAge,
	})
}
