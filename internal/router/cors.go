package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/LorenzoMarty/FinLovi/internal/config"
)

// CorsMiddleware allows the configured web origin (defaults to *).
func CorsMiddleware(cfg *config.Config) fiber.Handler {
	origin := cfg.WebOrigin
	if origin == "" {
		origin = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: false,
	})
}
