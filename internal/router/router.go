package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/driverscash/driverscash-backend/internal/handlers"
	"github.com/driverscash/driverscash-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)

	wh := handlers.NewWebhookHandlers(deps)
	qh := handlers.NewQueryHandlers(deps)

	r.Get("/", handlers.Health)
	r.Post("/webhook", wh.Receive)

	r.Route("/api", func(r chi.Router) {
		auth := middleware.NewMiddleware(deps.Firebase)
		r.Use(auth.FirebaseAuth)
		r.Mount("/", qh.QueryRoutes())
	})

	return r
}
