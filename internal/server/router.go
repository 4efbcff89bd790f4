package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/codelens/snippet-review/internal/server/handler"
)

// NewRouter creates and configures the HTTP router with middleware, the API
// routes, and the embedded client as a catch-all.
func NewRouter(reviewHandler *handler.ReviewHandler, client http.Handler) *chi.Mux {
	r := chi.NewRouter()

	// Configure middleware stack. No request timeout is applied here: the
	// review endpoint blocks on the model call, which can be slow.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", reviewHandler.Health)
		r.Post("/review", reviewHandler.Submit)
		r.Get("/reviews", reviewHandler.List)
	})

	// Everything else is the single-page client.
	r.Handle("/*", client)

	return r
}

// corsMiddleware allows browsers to call the API from any origin, matching
// the permissive setup the client was built against.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
