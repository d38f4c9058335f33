package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const allowOriginHeader = "Access-Control-Allow-Origin"

// CORS returns a middleware granting read access to any origin. All methods are
// listed so that 404 responses to other methods stay readable as well.
//
// Requests carrying an Origin header are handled by go-chi/cors, which also
// answers preflight requests. Requests without one still receive
// Access-Control-Allow-Origin: * so every response is readable cross-origin.
func CORS() func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			chimiddleware.RequestIDHeader,
			"traceparent",
		},
		ExposedHeaders: []string{chimiddleware.RequestIDHeader},
		MaxAge:         300,
	})
	return func(next http.Handler) http.Handler {
		h := c.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Origin") == "" {
				w.Header().Set(allowOriginHeader, "*")
			}
			h.ServeHTTP(w, r)
		})
	}
}
