package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/getlatam/getla-api/internal/application/dto"
	"github.com/getlatam/getla-api/internal/application/usecase"
	"github.com/getlatam/getla-api/internal/domain"
)

// UsuarioHandler maneja las peticiones HTTP de cuentas de la consola.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Create POST /api/usuarios
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Email == "" || in.Password == "" || in.Rol == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, email, password y rol son requeridos"})
	}
	if len(in.Password) < 5 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 5 caracteres"})
	}
	usuario, err := h.uc.Crear(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailYaExiste) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos: revise email, imagen y rol"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(usuario)
}

// List GET /api/usuarios?buscar=
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Query("buscar"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.UsuariosListResponse{Usuarios: list})
}

// GetByID GET /api/usuarios/:id
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	usuario, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if usuario == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(usuario)
}

// Update PUT /api/usuarios/:id
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	usuario, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailYaExiste) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if usuario == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(usuario)
}

// Delete DELETE /api/usuarios/:id
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MsgResponse{Msg: "usuario eliminado"})
}
