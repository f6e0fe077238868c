package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/getlatam/getla-api/pkg/logger"
)

// RequestLogger registra cada petición atendida: método, ruta, estado y
// duración. Los estados 4xx salen como warn y los 5xx como error.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Componente("http")
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()

		estado := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				estado = fe.Code
			} else {
				estado = fiber.StatusInternalServerError
			}
		}

		evento := log.Info()
		switch {
		case estado >= 500:
			evento = log.Error()
		case estado >= 400:
			evento = log.Warn()
		}
		evento.
			Str("metodo", c.Method()).
			Str("ruta", c.Path()).
			Int("estado", estado).
			Dur("duracion", time.Since(inicio)).
			Str("ip", c.IP()).
			Msg("petición atendida")

		return err
	}
}
