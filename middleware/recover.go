package middleware

import (
	"shop-api/response"

	"github.com/gofiber/fiber/v2"
)

// Recover turns a panic in a later handler into an error for the error handler.
// Panics with an error value become Internal errors, anything else Unknown.
func Recover() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					err = response.Internal(e)
					return
				}
				err = response.Unknown(r)
			}
		}()

		return c.Next()
	}
}
