package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/servicehub/servicehub-api/internal/api"
	apiMiddleware "github.com/servicehub/servicehub-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.cookies)

	serviceHandler := api.NewServiceHandler(app.stores.services, app.logger)
	reviewHandler := api.NewReviewHandler(app.stores.reviews, app.logger)
	userHandler := api.NewUserHandler(app.stores.users, app.logger)
	authHandler := api.NewAuthHandler(app.jwtService, app.cookies)
	healthHandler := api.NewHealthHandler(app.db)

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)

	// Auth cookie
	r.Post("/jwt", authHandler.IssueToken)
	r.Get("/logout", authHandler.Logout)

	// Services
	r.Get("/services", serviceHandler.List)
	r.Get("/services/featured", serviceHandler.Featured)
	r.Get("/service/{id}", serviceHandler.Get)
	r.Put("/service/update/{id}", serviceHandler.Update)
	r.Delete("/service/delete/{id}", serviceHandler.Delete)

	// Reviews
	r.Get("/reviews/all", reviewHandler.All)
	r.Get("/reviews/{serviceId}", reviewHandler.ByService)
	r.Post("/reviews/add", reviewHandler.Create)
	r.Get("/review/{id}", reviewHandler.Get)
	r.Put("/review/update/{id}", reviewHandler.Update)
	r.Delete("/review/delete/{id}", reviewHandler.Delete)

	// Users
	r.Post("/users/add", userHandler.Register)
	r.Get("/users", userHandler.List)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Post("/service/add", serviceHandler.Create)
		r.Get("/service/me/{email}", serviceHandler.Mine)
		r.Get("/reviews/me/{email}", reviewHandler.Mine)
	})

	return r
}
