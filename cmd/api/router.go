package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/floorboard/service/internal/admin"
	"github.com/floorboard/service/internal/floor"
	"github.com/floorboard/service/internal/metrics"
	appMiddleware "github.com/floorboard/service/internal/middleware"
	"github.com/floorboard/service/internal/upload"
)

type routerDeps struct {
	logger               *slog.Logger
	floors               *floor.Handler
	uploads              *upload.Handler
	admins               *admin.Handler
	jwtSecret            string
	requireAuthForWrites bool
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(d.logger))
	r.Use(appMiddleware.Metrics)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", metrics.Handler())

	// Swagger UI at /swagger/index.html
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Get("/floors", d.floors.List)

	// Writes are open unless FLOORS_REQUIRE_AUTH is set.
	r.Group(func(r chi.Router) {
		if d.requireAuthForWrites {
			r.Use(appMiddleware.RequireAuth(d.jwtSecret))
		}
		r.Put("/floors", d.floors.Publish)
		r.Put("/floors/publish", d.floors.Publish)
		r.Delete("/floors/{id}", d.floors.Delete)
		r.Post("/storage/floors", d.uploads.UploadFloorImage)
	})

	r.Group(func(r chi.Router) {
		r.Use(appMiddleware.RequireAuth(d.jwtSecret))
		r.Get("/me", d.admins.GetMe)
	})

	return r
}
