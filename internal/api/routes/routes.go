package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/hsm-gustavo/bucketlist/docs"
	"github.com/hsm-gustavo/bucketlist/internal/api/auth"
	"github.com/hsm-gustavo/bucketlist/internal/api/destination"
	"github.com/hsm-gustavo/bucketlist/internal/api/health"
	apimw "github.com/hsm-gustavo/bucketlist/internal/api/middleware"
	"github.com/hsm-gustavo/bucketlist/internal/api/respond"
	"github.com/hsm-gustavo/bucketlist/internal/api/user"
	"github.com/hsm-gustavo/bucketlist/internal/config"
)

const maxBodyBytes = 10 << 20

type Dependencies struct {
	Config       *config.Config
	Log          *slog.Logger
	Users        user.Store
	Destinations destination.Store
	// Hasher defaults to bcrypt at the default cost.
	Hasher auth.PasswordHasher
	// Redis, when set, backs the rate limiters.
	Redis *redis.Client
}

func SetupRoutes(deps Dependencies) http.Handler {
	cfg := deps.Config
	log := deps.Log

	r := chi.NewRouter()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300, // max time in seconds for OPTIONS preflight response cache
	})

	r.Use(corsMiddleware.Handler)

	r.Use(middleware.RequestID)
	// Rate limits key on RemoteAddr, so forwarded headers are only honored
	// when a trusted proxy sets them.
	if cfg.Server.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(apimw.RequestLogger(log))
	r.Use(apimw.Recoverer(log))
	r.Use(apimw.SecurityHeaders)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.RequestSize(maxBodyBytes))
	r.Use(middleware.Timeout(10 * time.Second))

	resp := respond.New(log, !cfg.IsProduction())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		resp.Message(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		resp.Message(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// init services & handlers
	hasher := deps.Hasher
	if hasher == nil {
		hasher = auth.NewBcryptHasher(0)
	}
	tokens := auth.NewTokenService([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	authService := auth.NewAuthService(deps.Users, hasher, tokens)
	authHandler := auth.NewAuthHandler(authService, resp)
	authMiddleware := auth.NewMiddleware(tokens, resp, log)
	destinationHandler := destination.NewHandler(deps.Destinations, resp)

	r.Route("/api", func(r chi.Router) {
		if cfg.RateLimit.Enabled {
			r.Use(apimw.RateLimit{
				Requests: cfg.RateLimit.Requests,
				Window:   cfg.RateLimit.Window,
				Message:  "Too many requests, please try again later",
				Prefix:   "api",
				Redis:    deps.Redis,
				Log:      log,
			}.Handler())
		}

		r.Get("/health", health.HealthHandler)

		r.Route("/auth", func(r chi.Router) {
			if cfg.RateLimit.Enabled {
				r.Use(apimw.RateLimit{
					Requests: cfg.RateLimit.AuthRequests,
					Window:   cfg.RateLimit.Window,
					Message:  "Too many authentication attempts, please try again later",
					Prefix:   "auth",
					Redis:    deps.Redis,
					Log:      log,
				}.Handler())
			}

			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			r.With(authMiddleware.Authenticate).Get("/me", authHandler.Me)
		})

		// protected destination routes
		r.Route("/destinations", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/", destinationHandler.List)
			r.Post("/", destinationHandler.Create)
			r.Put("/{id}", destinationHandler.Update)
			r.Delete("/{id}", destinationHandler.Delete)
			r.Patch("/{id}/visited", destinationHandler.ToggleVisited)
		})
	})

	// init swagger
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.WrapHandler)

	return r
}
