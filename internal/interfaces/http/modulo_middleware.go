package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/getlatam/getla-api/internal/application/dto"
	"github.com/getlatam/getla-api/internal/domain/rol"
)

// RequireModulo devuelve un middleware Fiber que verifica si el rol del token
// tiene acceso al módulo. La tabla de permisos de internal/domain/rol es la
// única fuente de verdad. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 403 Forbidden → el rol no tiene el módulo (la consola lo muestra deshabilitado).
//   - 401 si no hay rol en el contexto (el AuthMiddleware debería haberlo puesto).
func RequireModulo(modulo string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r := GetRol(c)
		if r == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "rol no encontrado en el token",
			})
		}
		if !rol.Permitido(r, modulo) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "MODULO_NO_PERMITIDO",
				Message: "el rol '" + r + "' no tiene acceso al módulo '" + modulo + "'",
			})
		}
		return c.Next()
	}
}
