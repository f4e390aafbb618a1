package middleware

import (
	"net/http"
	"slices"

	gorillaHandlers "github.com/gorilla/handlers"
)

// CORS разрешает все методы и заголовки для указанных источников
// "*" в списке разрешает любой источник
func CORS(origins []string) func(http.Handler) http.Handler {
	opts := []gorillaHandlers.CORSOption{
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodOptions, http.MethodHead,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "Accept", "Origin", "X-Requested-With"}),
		gorillaHandlers.AllowCredentials(),
	}

	if slices.Contains(origins, "*") {
		opts = append(opts, gorillaHandlers.AllowedOriginValidator(func(string) bool { return true }))
	} else {
		opts = append(opts, gorillaHandlers.AllowedOrigins(origins))
	}

	return gorillaHandlers.CORS(opts...)
}
