package middlewares

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
	logger "github.com/stevedore-dev/stevedore/internal/core/services/log"
)

// TokenAuthentication guards the API with a static bearer token, the way CI
// runners authenticate against a coordinator. An empty token disables the
// check.
func TokenAuthentication(token string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if token == "" {
			return ctx.Next()
		}

		header := ctx.Get(fiber.HeaderAuthorization)
		presented := strings.TrimPrefix(header, "Bearer ")

		if presented == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			logger.Log().Warn("Token authentication failed")
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or missing token")
		}
		return ctx.Next()
	}
}
