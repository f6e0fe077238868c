package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/getlatam/getla-api/internal/application/dto"
	"github.com/getlatam/getla-api/pkg/jwt"
)

// Locals keys para los datos del usuario autenticado en Fiber.
const (
	LocalUsuarioID = "usuario_id"
	LocalRol       = "rol"
	LocalToken     = "token"
)

// ExtraerToken saca el token crudo de la petición: Authorization Bearer o, como
// alternativa, el header x-auth-token que envían los clientes legacy.
func ExtraerToken(c *fiber.Ctx) string {
	if authHeader := c.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return strings.TrimSpace(c.Get("x-auth-token"))
}

// AuthMiddleware valida el JWT y extrae UsuarioID y Rol a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := ExtraerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token requerido (Authorization: Bearer o x-auth-token)"})
		}
		perfil, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUsuarioID, perfil.ID)
		c.Locals(LocalRol, perfil.Rol)
		c.Locals(LocalToken, token)
		return c.Next()
	}
}

// GetUsuarioID devuelve el UsuarioID del contexto (después del middleware de auth).
func GetUsuarioID(c *fiber.Ctx) string {
	v := c.Locals(LocalUsuarioID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRol devuelve el rol del contexto (después del middleware de auth).
func GetRol(c *fiber.Ctx) string {
	v := c.Locals(LocalRol)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetToken devuelve el token crudo del contexto (después del middleware de auth).
func GetToken(c *fiber.Ctx) string {
	v := c.Locals(LocalToken)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
