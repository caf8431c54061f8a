package router

import (
	"shop-api/response"
	"shop-api/schema"

	"github.com/gofiber/fiber/v2"
)

// Context is what a typed route handler receives. Parts without a schema are nil.
type Context struct {
	Query  any
	Params any
	Body   any
	Ctx    *fiber.Ctx
}

// Query returns the validated query as T, or T's zero value
func Query[T any](c *Context) T {
	v, _ := c.Query.(T)
	return v
}

// Params returns the validated route params as T, or T's zero value
func Params[T any](c *Context) T {
	v, _ := c.Params.(T)
	return v
}

// Body returns the validated body as T, or T's zero value
func Body[T any](c *Context) T {
	v, _ := c.Body.(T)
	return v
}

// TypedHandler is the business handler of a typed route
type TypedHandler func(c *Context) (*response.Result, error)

// Route is a method, a path and a wrapped handler, ready to be registered
type Route struct {
	method  string
	path    string
	handler Handler
}

// NewRoute builds a route around an adapter-level handler
func NewRoute(method, path string, handler Handler) Route {
	return Route{method: method, path: path, handler: handler}
}

// Method returns the HTTP method
func (r Route) Method() string { return r.method }

// Path returns the path template
func (r Route) Path() string { return r.path }

// Handler returns the wrapped handler
func (r Route) Handler() Handler { return r.handler }

// Builder accumulates the schemas of one route. Every method returns a new
// Builder; the receiver is left unchanged.
type Builder struct {
	method  string
	path    string
	schemas schema.Set
}

// Get starts a GET route
func Get(path string) Builder { return Builder{method: fiber.MethodGet, path: path} }

// Post starts a POST route
func Post(path string) Builder { return Builder{method: fiber.MethodPost, path: path} }

// Put starts a PUT route
func Put(path string) Builder { return Builder{method: fiber.MethodPut, path: path} }

// Delete starts a DELETE route
func Delete(path string) Builder { return Builder{method: fiber.MethodDelete, path: path} }

// Query sets the query schema
func (b Builder) Query(s schema.Schema) Builder {
	b.schemas.Query = s
	return b
}

// Param sets the route params schema
func (b Builder) Param(s schema.Schema) Builder {
	b.schemas.Params = s
	return b
}

// Body sets the body schema
func (b Builder) Body(s schema.Schema) Builder {
	b.schemas.Body = s
	return b
}

// Handler finishes the route. The returned handler validates the request and
// only then calls fn with the validated parts.
func (b Builder) Handler(fn TypedHandler) Route {
	schemas := b.schemas
	return NewRoute(b.method, b.path, func(c *fiber.Ctx) (*response.Result, error) {
		values, err := schemas.Validate(schema.Raw{
			Query:  c.Queries(),
			Params: c.AllParams(),
			Body:   c.Body(),
		})
		if err != nil {
			return nil, err
		}

		return fn(&Context{
			Query:  values.Query,
			Params: values.Params,
			Body:   values.Body,
			Ctx:    c,
		})
	})
}
