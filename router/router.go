// Package router registers handlers on Fiber and normalizes what they return.
//
// Handlers return a *response.Result or an error. A non-nil result is written
// as a response.Envelope; a nil result means the handler wrote the response
// itself. Errors are handed to Fiber's ErrorHandler.
package router

import (
	"log/slog"
	"shop-api/response"

	"github.com/gofiber/fiber/v2"
)

// Handler is an adapter-level handler
type Handler func(c *fiber.Ctx) (*response.Result, error)

// Middleware lifts a plain Fiber middleware. It must call c.Next() to continue.
func Middleware(h fiber.Handler) Handler {
	return func(c *fiber.Ctx) (*response.Result, error) {
		return nil, h(c)
	}
}

// Router wraps a Fiber router and keeps the table of registered routes
type Router struct {
	instance fiber.Router
	logger   *slog.Logger
	routes   []Route
}

// New creates a router on top of a Fiber app or group
func New(instance fiber.Router, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{instance: instance, logger: logger}
}

// Group returns a router for a path prefix
func (r *Router) Group(prefix string, middleware ...fiber.Handler) *Router {
	return New(r.instance.Group(prefix, middleware...), r.logger)
}

// Get registers a GET route. All handlers but the last are middleware.
func (r *Router) Get(path string, handlers ...Handler) {
	r.Handle(fiber.MethodGet, path, handlers...)
}

// Post registers a POST route
func (r *Router) Post(path string, handlers ...Handler) {
	r.Handle(fiber.MethodPost, path, handlers...)
}

// Put registers a PUT route
func (r *Router) Put(path string, handlers ...Handler) {
	r.Handle(fiber.MethodPut, path, handlers...)
}

// Delete registers a DELETE route
func (r *Router) Delete(path string, handlers ...Handler) {
	r.Handle(fiber.MethodDelete, path, handlers...)
}

// Handle registers handlers for method and path. Middleware run in order
// before the last handler.
func (r *Router) Handle(method, path string, handlers ...Handler) {
	if len(handlers) == 0 {
		panic("router: no handler for " + method + " " + path)
	}

	wrapped := make([]fiber.Handler, len(handlers))
	for i, h := range handlers {
		wrapped[i] = wrap(h)
	}

	r.instance.Add(method, path, wrapped...)
	r.routes = append(r.routes, NewRoute(method, path, handlers[len(handlers)-1]))
}

// Register adds routes built with the route builder
func (r *Router) Register(routes ...Route) *Router {
	for _, route := range routes {
		r.instance.Add(route.method, route.path, wrap(route.handler))
		r.routes = append(r.routes, route)
		r.logger.Info("route registered", "method", route.method, "path", route.path)
	}
	return r
}

// Routes returns the registered routes in registration order
func (r *Router) Routes() []Route {
	routes := make([]Route, len(r.routes))
	copy(routes, r.routes)
	return routes
}

func wrap(h Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := h(c)
		if err != nil {
			return err
		}
		if result == nil {
			return nil
		}
		return c.Status(result.StatusCode()).JSON(result.Envelope())
	}
}
