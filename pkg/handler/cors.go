package handler

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS lets the browser console call the api from the given origins
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", SessionHeaderName},
		ExposedHeaders:   []string{"Content-Disposition", HeaderNotification},
		AllowCredentials: true,
	})
	return c.Handler
}
