package middlewares

import (
	"github.com/gofiber/fiber/v2"
	constants "github.com/stevedore-dev/stevedore/internal"
)

func NewHeaderMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Response().Header.Set("Stevedore-Version", constants.Version)
		return ctx.Next()
	}
}
