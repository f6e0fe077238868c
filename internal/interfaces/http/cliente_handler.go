package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/getlatam/getla-api/internal/application/dto"
	"github.com/getlatam/getla-api/internal/application/usecase"
	"github.com/getlatam/getla-api/internal/domain"
)

// ClienteHandler maneja las peticiones HTTP de clientes facturables.
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Create POST /api/clientes
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Nit == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y nit son requeridos"})
	}
	cliente, err := h.uc.Crear(in)
	if err != nil {
		if errors.Is(err, domain.ErrNitYaExiste) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NIT_EXISTS", Message: "ya existe un cliente con ese NIT"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// List GET /api/clientes?buscar=
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Query("buscar"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ClientesListResponse{Clientes: list})
}

// GetByNit GET /api/clientes/nit/:nit (autocompletado de la pantalla de facturación)
func (h *ClienteHandler) GetByNit(c *fiber.Ctx) error {
	cliente, err := h.uc.GetByNit(c.Params("nit"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if cliente == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.JSON(cliente)
}

// Update PUT /api/clientes/:id
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cliente, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNitYaExiste) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NIT_EXISTS", Message: "ya existe un cliente con ese NIT"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if cliente == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return c.JSON(cliente)
}

// Delete DELETE /api/clientes/:id
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MsgResponse{Msg: "cliente eliminado"})
}
