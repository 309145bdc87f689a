package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"titlehub/internal/auth"
	"titlehub/internal/config"
	"titlehub/internal/handler"
	"titlehub/internal/middleware"
	"titlehub/internal/model"
	"titlehub/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	revocation auth.RevocationStoreInterface,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	contactHandler *handler.ContactHandler,
	contactTypeHandler *handler.ContactTypeHandler,
	orderHandler *handler.OrderHandler,
	orderEntryHandler *handler.OrderEntryHandler,
	orderSummaryHandler *handler.OrderSummaryHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	// Public routes
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)

	// Authenticated routes: token verification, then subject resolution
	authed := api.Group("", middleware.JWT(jwtService), middleware.ResolveUser(userRepo, revocation))
	adminOnly := middleware.RequireRoles(model.RoleAdmin)

	authed.POST("/change-password", authHandler.ChangePassword)

	// Contacts
	authed.GET("/contacts", contactHandler.List)
	authed.GET("/contacts/deleted", contactHandler.ListDeleted, adminOnly)
	authed.GET("/contacts/search", contactHandler.Search)
	authed.GET("/contacts/:id", contactHandler.Get)
	authed.POST("/contacts", contactHandler.Create)
	authed.PATCH("/contacts/:id", contactHandler.Update)
	authed.DELETE("/contacts/:id", contactHandler.Delete)

	// Contact types (taxonomy mutations are administrative)
	authed.GET("/contact-types", contactTypeHandler.List)
	authed.GET("/contact-types/:id", contactTypeHandler.Get)
	authed.POST("/contact-types", contactTypeHandler.Create, adminOnly)
	authed.DELETE("/contact-types/:id", contactTypeHandler.Delete, adminOnly)
	authed.PATCH("/contact-types/:id/restore", contactTypeHandler.Restore, adminOnly)

	// Orders
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/deleted", orderHandler.ListDeleted, adminOnly)
	authed.GET("/orders/completed", orderHandler.ListCompleted)
	authed.GET("/orders/:id", orderHandler.Get)
	authed.POST("/orders", orderHandler.Create)
	authed.PATCH("/orders/:id", orderHandler.Update)
	authed.DELETE("/orders/:id", orderHandler.Delete)

	// Order entries
	authed.POST("/order-entries", orderEntryHandler.Create)
	authed.GET("/order-entries", orderEntryHandler.List)
	authed.GET("/order-entries/:id", orderEntryHandler.Get)
	authed.PUT("/order-entries/:id", orderEntryHandler.Update)
	authed.DELETE("/order-entries/:id", orderEntryHandler.Delete)

	// Order summaries
	authed.GET("/order-summaries", orderSummaryHandler.List)
	authed.GET("/order-summaries/:orderNumber", orderSummaryHandler.GetByOrderNumber)
	authed.GET("/order-summaries/:orderNumber/order-status", orderSummaryHandler.GetStatus)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
