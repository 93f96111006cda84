package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"wiskoro-bot/config"
	"wiskoro-bot/handlers"
	"wiskoro-bot/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	// Initialize structured logger
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(logHandler))

	// Load configuration
	cfg := config.LoadConfig()
	persona := config.DefaultPersona()

	// Initialize MongoDB when configured; without it the bot still answers,
	// it just doesn't log exchanges.
	var store *services.ExchangeStore
	if cfg.MongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := services.InitMongoDB(ctx, cfg.MongoURI)
		if err != nil {
			slog.Error("Failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}
		defer client.Disconnect(context.Background())

		store = services.NewExchangeStore(client, cfg.DatabaseName)
		if err := store.EnsureIndexes(ctx); err != nil {
			slog.Error("Failed to create exchange indexes", "error", err)
			// Continue anyway - the app can still work without indexes
		}
	}

	// Wire the pipeline
	classifier := services.NewClassifier()
	shaper := services.NewShaper(cfg.MaxSentences, cfg.MaxResponseChars, persona, classifier.Topics())
	cache := services.NewResponseCache(cfg.CacheExpiration, cfg.CacheMaxEntries)
	completer := services.NewClaudeClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.MaxTokens, cfg.Temperature, cfg.RequestTimeout)
	responder := services.NewResponder(classifier, shaper, cache, completer, store, persona)

	chatHandler := handlers.NewChatHandler(responder, persona)
	healthHandler := handlers.NewHealthHandler(store, cache)

	// Start periodic cache expiry sweeps
	sweeper, err := services.StartCacheSweeper(cache, cfg.CacheSweepInterval)
	if err != nil {
		slog.Error("Failed to start cache sweeper", "error", err)
		os.Exit(1)
	}
	defer sweeper.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("Request error", "error", err, "status", code)
			return c.Status(code).JSON(fiber.Map{
				"detail": persona.UnexpectedMessage,
			})
		},
	})

	// Middleware
	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400, // 24 hours
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path}\n",
	}))

	// Per-IP rate limit on the public endpoints
	rateLimit := limiter.New(limiter.Config{
		Max:        cfg.RateLimitPerMinute,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"detail": "Rustig aan G, je gaat te snel! Probeer het zo weer 🐢",
			})
		},
	})

	// Routes
	app.Get("/", healthHandler.HandleRoot)
	app.Get("/health", healthHandler.HandleHealth)
	app.Post("/chat", rateLimit, chatHandler.HandleChat)
	app.Get("/fact", rateLimit, chatHandler.HandleFact)

	// Start server
	slog.Info("Server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
