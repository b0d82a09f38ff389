// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	httpmiddleware "storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler      *handler.ProductHandler
	OrderHandler        *handler.OrderHandler
	AuthMiddleware      *httpmiddleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler      *handler.ProductHandler
	orderHandler        *handler.OrderHandler
	authMiddleware      *httpmiddleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:      params.ProductHandler,
		orderHandler:        params.OrderHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint, the only unauthenticated route
	e.GET("/health", handler.HealthCheck)

	// Everything under /api requires a verified bearer token
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.GET("/me", handler.Me)

		apiGroup.GET("/products", r.productHandler.List)
		apiGroup.POST("/products", r.productHandler.Create)
		apiGroup.GET("/products/:id", r.productHandler.Get)
		apiGroup.PUT("/products/:id", r.productHandler.Update)
		apiGroup.DELETE("/products/:id", r.productHandler.Delete)

		apiGroup.GET("/orders", r.orderHandler.List)
		apiGroup.POST("/orders", r.orderHandler.Create)
		apiGroup.GET("/orders/:id", r.orderHandler.Get)
		apiGroup.PUT("/orders/:id", r.orderHandler.Update)
		apiGroup.DELETE("/orders/:id", r.orderHandler.Delete)
	}
}
