package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/fiado-api/pkg/logger"
)

// RequestLogger middleware de acceso: método, ruta, estado y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
