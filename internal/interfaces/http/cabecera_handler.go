package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/getlatam/getla-api/internal/application/dto"
	"github.com/getlatam/getla-api/internal/application/usecase"
	"github.com/getlatam/getla-api/internal/domain"
)

// CabeceraHandler maneja las peticiones HTTP de sucursales.
type CabeceraHandler struct {
	uc *usecase.CabeceraUseCase
}

// NewCabeceraHandler construye el handler.
func NewCabeceraHandler(uc *usecase.CabeceraUseCase) *CabeceraHandler {
	return &CabeceraHandler{uc: uc}
}

// Create POST /api/cabecera
func (h *CabeceraHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearCabeceraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Local == "" || in.Nit == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "local y nit son requeridos"})
	}
	cabecera, err := h.uc.Crear(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(cabecera)
}

// List GET /api/cabecera?buscar=
func (h *CabeceraHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Query("buscar"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CabecerasListResponse{Cabeceras: list})
}

// Update PUT /api/cabecera/:id
func (h *CabeceraHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarCabeceraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cabecera, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if cabecera == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal no encontrada"})
	}
	return c.JSON(cabecera)
}

// Delete DELETE /api/cabecera/:id
func (h *CabeceraHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MsgResponse{Msg: "sucursal eliminada"})
}
