package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/LorenzoMarty/FinLovi/internal/api"
	"github.com/LorenzoMarty/FinLovi/internal/config"
)

// LocalsEmail is the c.Locals key under which the guard stores the
// authenticated identity.
const LocalsEmail = "email"

// Guard returns the bearer middleware. With auth disabled it is a
// pass-through; enabled, it requires a valid access token and attaches the
// identity claim to the request before calling the downstream handler.
func Guard(cfg *config.Config) fiber.Handler {
	secret := []byte(cfg.JWTSecret)

	return func(c *fiber.Ctx) error {
		if !cfg.AuthEnabled {
			return c.Next()
		}

		header := strings.TrimSpace(c.Get("Authorization"))
		parts := strings.SplitN(header, " ", 2)
		if header == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return api.Fail(c, fiber.StatusUnauthorized, "missing token", api.CodeUnauthorized, nil)
		}

		email, err := VerifyToken(secret, strings.TrimSpace(parts[1]), UseAccess)
		if err != nil {
			return api.Fail(c, fiber.StatusUnauthorized, "invalid token", api.CodeUnauthorized, nil)
		}

		c.Locals(LocalsEmail, email)
		return c.Next()
	}
}
