// Package routes wires handlers and middleware into the HTTP router.
package routes

import (
	"log/slog"

	"github.com/dukerupert/orderflow/internal/handler"
	"github.com/dukerupert/orderflow/internal/middleware"
	"github.com/dukerupert/orderflow/internal/router"
)

// Deps contains the dependencies for the full route table.
type Deps struct {
	Logger         *slog.Logger
	Orders         *handler.OrderHandler
	Products       *handler.ProductHandler
	Metrics        *middleware.Metrics
	AllowedOrigins []string
}

// New builds the router with the global middleware chain and all routes.
// Chain order matters: the request ID must exist before the request
// logger attaches it, and recovery wraps everything below it.
func New(deps Deps) *router.Router {
	r := router.New(
		middleware.RequestID,
		middleware.WithRequestLogger(deps.Logger),
		deps.Metrics.Middleware,
		router.Recovery(deps.Logger),
		router.Logger(deps.Logger),
		router.CORS(deps.AllowedOrigins),
	)

	// Orders
	r.Post("/api/orders", deps.Orders.Create)
	r.Get("/api/orders", deps.Orders.List)
	r.Get("/api/orders/{id}", deps.Orders.Get)
	r.Patch("/api/orders/{id}/status", deps.Orders.UpdateStatus)
	r.Delete("/api/orders/{id}", deps.Orders.Delete)

	// Catalog (read only)
	r.Get("/api/products", deps.Products.List)
	r.Get("/api/products/{id}", deps.Products.Get)

	// Operational endpoints
	r.Get("/health", handler.Health)
	r.Handle("GET", "/metrics", deps.Metrics.Handler())

	return r
}
