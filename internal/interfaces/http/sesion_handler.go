package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/getlatam/getla-api/internal/application/dto"
	"github.com/getlatam/getla-api/internal/application/sesion"
	"github.com/getlatam/getla-api/internal/domain/entity"
)

// SesionHandler expone la puerta de navegación: el sidebar de la consola la
// consulta al montar cada pantalla protegida.
type SesionHandler struct {
	gate *sesion.Gate
}

// NewSesionHandler construye el handler.
func NewSesionHandler(gate *sesion.Gate) *SesionHandler {
	return &SesionHandler{gate: gate}
}

// Evaluar godoc
// @Summary      Evaluar la sesión y el menú del rol
// @Description  Monta la sesión cacheada y la revalida contra el servidor. Si la
// @Description  revalidación falla la sesión se destruye y el estado es "redirigiendo".
// @Tags         sesion
// @Produce      json
// @Success      200  {object}  dto.SesionResponse
// @Failure      401  {object}  dto.SesionResponse
// @Router       /api/sesion [get]
func (h *SesionHandler) Evaluar(c *fiber.Ctx) error {
	d := h.gate.Evaluar(c.Context(), ExtraerToken(c))
	resp := dto.SesionResponse{
		Estado:     string(d.Estado),
		Menu:       d.Menu,
		Aterrizaje: d.Aterrizaje,
	}
	if d.Estado != sesion.EstadoAutorizada {
		return c.Status(fiber.StatusUnauthorized).JSON(resp)
	}
	resp.Usuario = *toUsuarioResponse(&d.Perfil)
	return c.JSON(resp)
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Cargo:     u.Cargo,
		Email:     u.Email,
		Rol:       u.Rol,
		Imagen:    u.Imagen,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
