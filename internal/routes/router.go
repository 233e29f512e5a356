// Package routes assembles the HTTP surface of the vault.
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/passvault/internal/handlers"
	"github.com/sbilibin2017/passvault/internal/logger"
	"github.com/sbilibin2017/passvault/internal/middlewares"
)

// AuthService is the identity side consumed by the auth routes.
type AuthService interface {
	handlers.Registerer
	handlers.Authenticator
}

// PasswordService is the vault side consumed by the password routes.
type PasswordService interface {
	handlers.PasswordLister
	handlers.PasswordCreator
	handlers.PasswordUpdater
	handlers.PasswordDeleter
}

// Config holds router-level knobs.
type Config struct {
	// AuthRateLimit is requests per minute per client IP on /api/auth; 0 disables.
	AuthRateLimit int64
	// MaxBodyBytes caps request bodies; 0 means middlewares.DefaultMaxBodyBytes.
	MaxBodyBytes int64
	// AllowedOrigins for CORS; empty allows any origin.
	AllowedOrigins []string
	// SwaggerURL is where the UI fetches doc.json from.
	SwaggerURL string
	// TrustedProxy makes X-Forwarded-For / X-Real-IP replace the peer address.
	// Enable only when every request arrives through a proxy that sets them.
	TrustedProxy bool
}

// NewRouter wires middlewares and handlers. limiter may be nil.
func NewRouter(
	cfg Config,
	auth AuthService,
	passwords PasswordService,
	tokener middlewares.Tokener,
	limiter middlewares.HitCounter,
) *chi.Mux {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	if cfg.TrustedProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middlewares.RecoveryMiddleware)
	r.Use(chimiddleware.StripSlashes)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.NotFound(handlers.NotFoundHandler)
	r.MethodNotAllowed(handlers.MethodNotAllowedHandler)

	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	swaggerURL := cfg.SwaggerURL
	if swaggerURL == "" {
		swaggerURL = "/swagger/doc.json"
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.SecurityHeadersMiddleware)
		r.Use(middlewares.MaxBytesMiddleware(cfg.MaxBodyBytes))

		r.Get("/api/health", handlers.NewHealthHandler())

		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RateLimitMiddleware(limiter, cfg.AuthRateLimit))
			r.Post("/api/auth/register", handlers.NewRegisterHandler(auth))
			r.Post("/api/auth/login", handlers.NewLoginHandler(auth))
		})

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))
			r.Get("/api/passwords", handlers.NewListPasswordsHandler(passwords))
			r.Post("/api/passwords", handlers.NewCreatePasswordHandler(passwords))
			r.Put("/api/passwords/{id}", handlers.NewUpdatePasswordHandler(passwords))
			r.Delete("/api/passwords/{id}", handlers.NewDeletePasswordHandler(passwords))
		})
	})

	return r
}
