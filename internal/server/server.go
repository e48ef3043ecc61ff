// Package server contains the HTTP handlers for the application's API
// endpoints.
package server

import (
	"context"
	"log"
	"strings"
	"time"

	"devlink/internal/auth"
	"devlink/internal/cache"
	"devlink/internal/config"
	"devlink/internal/database"
	"devlink/internal/github"
	"devlink/internal/middleware"
	"devlink/internal/models"
	"devlink/internal/observability"
	"devlink/internal/repository"
	"devlink/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	tracerShutdown func(context.Context) error
	tokens         *auth.TokenManager
	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	profileRepo    repository.ProfileRepository
	authService    *service.AuthService
	postService    *service.PostService
	profileService *service.ProfileService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	var fetcherOpts []github.Option
	if cfg.GithubToken != "" {
		fetcherOpts = append(fetcherOpts, github.WithToken(cfg.GithubToken))
	}

	return NewServerWithDeps(cfg, db, redisClient, github.NewClient(fetcherOpts...))
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Used by tests and by bootstrap layers that establish DB/Redis themselves.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, fetcher github.RepoFetcher) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	prom := middleware.InitMetrics("devlink-api")

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		tokens:         tokens,
		userRepo:       userRepo,
		postRepo:       postRepo,
		profileRepo:    profileRepo,
	}
	server.authService = service.NewAuthService(userRepo, hasher, tokens)
	server.postService = service.NewPostService(postRepo, userRepo)
	server.profileService = service.NewProfileService(profileRepo, userRepo, postRepo, fetcher)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, x-auth-token",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Registration and login
	api.Post("/users", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	api.Post("/auth", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	api.Get("/auth", s.AuthRequired(), s.GetCurrentUser)

	// Post routes, all behind auth
	posts := api.Group("/posts", s.AuthRequired())
	posts.Get("/", s.GetPosts)
	posts.Post("/", s.CreatePost)
	// Specific /like, /unlike and /comment routes before the generic /:id
	posts.Put("/like/:id", s.LikePost)
	posts.Put("/unlike/:id", s.UnlikePost)
	posts.Post("/comment/:id", s.AddComment)
	posts.Delete("/comment/:id/:comment_id", s.RemoveComment)
	posts.Get("/:id", s.GetPost)
	posts.Delete("/:id", s.DeletePost)

	// Profile routes; browse endpoints are public
	profile := api.Group("/profile")
	profile.Get("/me", s.AuthRequired(), s.GetMyProfile)
	profile.Post("/", s.AuthRequired(), s.UpsertProfile)
	profile.Delete("/", s.AuthRequired(), s.DeleteAccount)
	profile.Put("/experience", s.AuthRequired(), s.AddExperience)
	profile.Delete("/experience/:id", s.AuthRequired(), s.RemoveExperience)
	profile.Put("/education", s.AuthRequired(), s.AddEducation)
	profile.Delete("/education/:id", s.AuthRequired(), s.RemoveEducation)
	profile.Get("/github/:username", s.GetGithubRepos)
	profile.Get("/user/:id", s.GetProfileByUser)
	profile.Get("/", s.GetProfiles)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The API runs without Redis, degraded to uncached reads.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// tokenFromRequest extracts the bearer token from the x-auth-token header,
// falling back to a standard Authorization: Bearer header.
func tokenFromRequest(c *fiber.Ctx) string {
	if token := c.Get("x-auth-token"); token != "" {
		return token
	}
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	return ""
}

// AuthRequired returns the authentication middleware. A missing token and an
// invalid one produce distinct messages; verification is purely
// cryptographic, so a token for a since-deleted user still passes here and
// fails at the handler's database lookup instead.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			return models.RespondWithError(c,
				models.NewUnauthenticatedError("No token, authorization denied"))
		}

		claims, err := s.tokens.Verify(tokenString)
		if err != nil {
			return models.RespondWithError(c,
				models.NewUnauthenticatedError("Token is not valid"))
		}

		c.Locals("userID", claims.UserID)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, claims.UserID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// Start starts the server
func (s *Server) Start() error {
	if s.config.TracingEnabled {
		shutdown, err := observability.InitTracing(observability.TracingConfig{
			ServiceName:    "devlink-api",
			ServiceVersion: "1.0.0",
			Environment:    s.config.Env,
			Enabled:        true,
			Exporter:       s.config.TracingExport,
			OTLPEndpoint:   s.config.OTLPEndpoint,
		})
		if err != nil {
			return err
		}
		s.tracerShutdown = shutdown
	}

	app := fiber.New(fiber.Config{
		AppName: "DevLink API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, err)
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if s.tracerShutdown != nil {
		if terr := s.tracerShutdown(ctx); terr != nil {
			log.Printf("error shutting down tracer: %v", terr)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
