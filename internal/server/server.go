// Package server contains HTTP handlers and route wiring for the API.
package server

import (
	"context"
	"fmt"
	"time"

	"paulgram/internal/cache"
	"paulgram/internal/config"
	"paulgram/internal/database"
	"paulgram/internal/llm"
	"paulgram/internal/middleware"
	"paulgram/internal/repository"
	"paulgram/internal/service"
	"paulgram/internal/webhook"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config          *config.Config
	db              *gorm.DB
	redis           *redis.Client
	promMiddleware  *fiberprometheus.FiberPrometheus
	webhookVerifier *webhook.Verifier

	userRepo    repository.UserRepository
	agentRepo   repository.AgentRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	messageRepo repository.MessageRepository

	userService    *service.UserService
	agentService   *service.AgentService
	postService    *service.PostService
	commentService *service.CommentService
	chatService    *service.ChatService
}

// NewServer creates a new server instance, establishing the database and
// Redis connections and the generation-API client from configuration.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	generator, err := llm.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("generation client init failed: %w", err)
	}

	return NewServerWithDeps(cfg, db, redisClient, generator)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, generator llm.Generator) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	agentRepo := repository.NewAgentRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Prometheus collectors register globally, so tests skip them to avoid
	// duplicate registration across server instances.
	var prom *fiberprometheus.FiberPrometheus
	if cfg.Env != "test" {
		prom = middleware.InitMetrics("paulgram-api")
	}

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		userRepo:       userRepo,
		agentRepo:      agentRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		messageRepo:    messageRepo,
	}

	server.userService = service.NewUserService(userRepo)
	server.agentService = service.NewAgentService(agentRepo, postRepo, redisClient)
	server.postService = service.NewPostService(postRepo)
	server.commentService = service.NewCommentService(commentRepo, postRepo, generator)
	server.chatService = service.NewChatService(messageRepo, agentRepo, generator)

	if cfg.WebhookSecret != "" {
		verifier, err := webhook.NewVerifier(cfg.WebhookSecret)
		if err != nil {
			return nil, fmt.Errorf("webhook verifier init failed: %w", err)
		}
		server.webhookVerifier = verifier
	}

	return server, nil
}

// AuthRequired returns the authentication middleware for protected routes.
func (s *Server) AuthRequired() fiber.Handler {
	return middleware.AuthRequired
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	middleware.InitMiddleware(s.config)

	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID into ctx
	app.Use(middleware.ContextMiddleware())

	// OpenTelemetry tracing
	app.Use(middleware.TracingMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS before middlewares that can short-circuit (e.g. limiter) so
	// browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			// Preflight requests are handled by CORS, and the limiter is
			// only meaningful in production.
			return c.Method() == fiber.MethodOptions || s.config.Env != "production"
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "PaulGram Backend Metrics Dashboard",
	}))

	// Identity-provider lifecycle webhook (signed, no session auth)
	api.Post("/webhook/clerk", s.ClerkWebhook)

	// Public reads
	api.Get("/posts", s.GetFeed)
	api.Get("/posts/:id", s.GetPost)
	api.Get("/agents", s.GetAgents)
	api.Get("/agents/:username", s.GetAgentProfile)
	api.Get("/comments", s.GetComments)
	api.Get("/comments/:id/replies", s.GetReplies)

	// Protected routes. Generation endpoints get a tighter per-user budget
	// since each request costs an upstream model call.
	protected := api.Group("", s.AuthRequired())
	protected.Get("/users/me", s.GetMyProfile)
	protected.Post("/onboarding", s.Onboard)
	protected.Post("/comments", middleware.RateLimit(s.redis, 20, time.Minute, "comments"), s.CreateComment)
	protected.Get("/agent/chat", s.GetChatHistory)
	protected.Post("/agent/chat", middleware.RateLimit(s.redis, 20, time.Minute, "chat"), s.AgentChat)
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return err
		}
	}
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
