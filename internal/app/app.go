package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/config"
	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/handlers"
	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/repository"
	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/repository/postgres"
	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/repository/sqlite"
	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// New assembles the Fiber app from already-constructed services. Tests drive
// the returned app directly through app.Test without a listener.
func New(tokens *services.TokenService, users *services.UserService, photos *services.PhotoService) *fiber.App {
	app := fiber.New()

	// Middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New())

	// Public Routes
	userRoutes := app.Group("/users")
	userRoutes.Post("/register", handlers.RegisterHandler(users))
	userRoutes.Post("/login", handlers.LoginHandler(users))

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Protected Routes
	photoRoutes := app.Group("/photos")
	photoRoutes.Use(handlers.AuthMiddleware(tokens, users))
	photoRoutes.Get("/", handlers.ListPhotosHandler(photos))
	photoRoutes.Post("/", handlers.CreatePhotoHandler(photos))
	photoRoutes.Get("/:id", handlers.GetPhotoHandler(photos))

	return app
}

func Run() {
	cfg := config.Load()

	// Init store
	var (
		userRepo  repository.UserRepository
		photoRepo repository.PhotoRepository
	)
	switch cfg.DBDriver {
	case "sqlite":
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer store.Close()
		userRepo, photoRepo = store.Users(), store.Photos()
	default:
		store, err := postgres.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer store.Close()
		userRepo, photoRepo = store.Users(), store.Photos()
	}

	// Services
	tokens := services.NewTokenService(cfg.JWTSecret)
	users := services.NewUserService(userRepo, tokens, cfg.BcryptCost)
	photos := services.NewPhotoService(photoRepo)

	app := New(tokens, users, photos)

	// Start Server
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Block until signal
	log.Println("Gracefully shutting down...")
	_ = app.Shutdown()
	log.Println("Server shutdown complete")
}
