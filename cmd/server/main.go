package main

import (
	"log"
	"net/http"

	_ "titlehub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"titlehub/internal/auth"
	"titlehub/internal/cache"
	"titlehub/internal/config"
	"titlehub/internal/db"
	"titlehub/internal/handler"
	"titlehub/internal/model"
	"titlehub/internal/repository"
	"titlehub/internal/router"
	"titlehub/internal/service"
)

// @title TitleHub API
// @version 1.0
// @description Title and order management API with JWT authentication and role-based access.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Contact{},
		&model.ContactType{},
		&model.Order{},
		&model.OrderEntry{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)
	contactTypeRepo := repository.NewContactTypeRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	orderEntryRepo := repository.NewOrderEntryRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	revocation := auth.NewRevocationStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, revocation)
	contactService := service.NewContactService(contactRepo)
	contactTypeService := service.NewContactTypeService(contactTypeRepo)
	orderService := service.NewOrderService(orderRepo)
	orderEntryService := service.NewOrderEntryService(orderEntryRepo)
	orderSummaryService := service.NewOrderSummaryService(orderEntryRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	contactHandler := handler.NewContactHandler(contactService)
	contactTypeHandler := handler.NewContactTypeHandler(contactTypeService)
	orderHandler := handler.NewOrderHandler(orderService)
	orderEntryHandler := handler.NewOrderEntryHandler(orderEntryService)
	orderSummaryHandler := handler.NewOrderSummaryHandler(orderSummaryService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		revocation,
		userRepo,
		authHandler,
		contactHandler,
		contactTypeHandler,
		orderHandler,
		orderEntryHandler,
		orderSummaryHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
