// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tourgenius/internal/delivery/http/middleware"
	"tourgenius/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	ItineraryHandler *handler.ItineraryHandler
	InvoiceHandler   *handler.InvoiceHandler
	CustomerHandler  *handler.CustomerHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	itineraryHandler *handler.ItineraryHandler
	invoiceHandler   *handler.InvoiceHandler
	customerHandler  *handler.CustomerHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		itineraryHandler: params.ItineraryHandler,
		invoiceHandler:   params.InvoiceHandler,
		customerHandler:  params.CustomerHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Itinerary routes require authentication
	itineraryGroup := e.Group("/itineraries")
	itineraryGroup.Use(r.authMiddleware.Authenticate)
	{
		itineraryGroup.POST("", r.itineraryHandler.Create)
		itineraryGroup.GET("", r.itineraryHandler.List)
		itineraryGroup.GET("/:id", r.itineraryHandler.Get)
		itineraryGroup.PUT("/:id", r.itineraryHandler.Update)
		itineraryGroup.DELETE("/:id", r.itineraryHandler.Delete)
		itineraryGroup.GET("/:id/pricing", r.itineraryHandler.GetPricing)
		itineraryGroup.GET("/:id/summary", r.itineraryHandler.GetSummary)
		itineraryGroup.GET("/:id/calendar-link", r.itineraryHandler.GetCalendarLink)
		itineraryGroup.GET("/:id/calendar.ics", r.itineraryHandler.ExportCalendar)
		itineraryGroup.GET("/:id/share-qr", r.itineraryHandler.GenerateShareQR)
	}

	// Invoice routes require authentication
	invoiceGroup := e.Group("/invoices")
	invoiceGroup.Use(r.authMiddleware.Authenticate)
	{
		invoiceGroup.POST("", r.invoiceHandler.Generate)
		invoiceGroup.GET("", r.invoiceHandler.List)
		invoiceGroup.GET("/:id", r.invoiceHandler.Get)
		invoiceGroup.POST("/:id/send", r.invoiceHandler.Send)
		invoiceGroup.POST("/:id/pay", r.invoiceHandler.MarkPaid)
	}

	// Customer routes require authentication
	customerGroup := e.Group("/customers")
	customerGroup.Use(r.authMiddleware.Authenticate)
	{
		customerGroup.POST("", r.customerHandler.Create)
		customerGroup.GET("", r.customerHandler.List)
		customerGroup.GET("/:id", r.customerHandler.Get)
		customerGroup.PUT("/:id", r.customerHandler.Update)
		customerGroup.DELETE("/:id", r.customerHandler.Delete)
	}
}
