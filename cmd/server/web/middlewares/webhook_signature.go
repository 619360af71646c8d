package middlewares

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/gofiber/fiber/v2"
	logger "github.com/stevedore-dev/stevedore/internal/core/services/log"
)

const signatureHeader = "X-Hub-Signature-256"

// WebhookSignature validates GitHub's hub signature: an HMAC-SHA256 of the
// raw request body keyed with the shared webhook secret.
func WebhookSignature(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if secret == "" {
			return ctx.Next()
		}

		presented := ctx.Get(signatureHeader)
		if !VerifySignature(secret, ctx.Body(), presented) {
			logger.Log().Warn("Webhook signature verification failed")
			return fiber.NewError(fiber.StatusUnauthorized, "invalid webhook signature")
		}
		return ctx.Next()
	}
}

func VerifySignature(secret string, body []byte, header string) bool {
	presented, ok := strings.CutPrefix(header, "sha256=")
	if !ok {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(presented))
}
