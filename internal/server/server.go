// Package server assembles the reference storefront API: the remote side of
// the admin client, used for local development and end-to-end tests.
package server

import (
	"fmt"
	"time"

	"tokoadmin/internal/handlers"
	"tokoadmin/internal/middleware"
	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
	"tokoadmin/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Options configures the reference API.
type Options struct {
	JWTSecret string
	// RequestLog enables fiber's access log.
	RequestLog bool
	Logger     *logrus.Logger
}

// Server is an assembled reference API.
type Server struct {
	App  *fiber.App
	Auth *services.AuthService
}

// OpenDatabase opens the configured database. The sqlite driver is the
// default; "file::memory:?cache=shared" gives a throwaway database.
func OpenDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "", "sqlite":
		if dsn == "" {
			dsn = "file::memory:?cache=shared"
		}
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Store{}, &models.Product{}, &models.Employee{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return db, nil
}

// New wires repositories, services and handlers onto a fiber app.
func New(db *gorm.DB, opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = logrus.New()
	}

	userRepo := repositories.NewGORMUserRepository(db)
	storeRepo := repositories.NewGORMStoreRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	employeeRepo := repositories.NewGORMEmployeeRepository(db)

	authService := services.NewAuthService(userRepo, opts.JWTSecret, log)
	storeService := services.NewStoreService(storeRepo)
	productService := services.NewProductService(productRepo, storeService)
	employeeService := services.NewEmployeeService(employeeRepo, storeService)

	app := fiber.New(fiber.Config{
		Immutable:             true,
		DisableStartupMessage: true,
	})
	if opts.RequestLog {
		app.Use(logger.New())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	apiV1 := app.Group("/api/v1")
	handlers.NewAuthHandler(authService, log).RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService, log))
	handlers.NewStoreHandler(storeService, log).RegisterRoutes(protected)
	handlers.NewProductHandler(productService, log).RegisterRoutes(protected)
	handlers.NewEmployeeHandler(employeeService, log).RegisterRoutes(protected)

	return &Server{App: app, Auth: authService}
}
