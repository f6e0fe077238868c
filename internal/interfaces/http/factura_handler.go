package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/getlatam/getla-api/internal/application/dto"
	"github.com/getlatam/getla-api/internal/application/facturacion"
	"github.com/getlatam/getla-api/internal/domain"
)

// FacturaHandler maneja las peticiones HTTP de facturación.
type FacturaHandler struct {
	uc    *facturacion.FacturaUseCase
	pdfUC *facturacion.PDFUseCase
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(uc *facturacion.FacturaUseCase, pdfUC *facturacion.PDFUseCase) *FacturaHandler {
	return &FacturaHandler{uc: uc, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Emitir factura
// @Description  Crea la factura descontando stock en una transacción. El cliente
// @Description  se referencia por ID o se resuelve por NIT (buscar-o-crear con
// @Description  confirmación explícita).
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CrearFacturaRequest  true  "factura"
// @Success      201   {object}  dto.FacturaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/factura [post]
func (h *FacturaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	factura, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrClienteNoExiste):
			// La consola muestra el prompt "¿crear cliente?" con este código.
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CLIENTE_NO_EXISTE", Message: "el cliente no existe; confirme su creación para facturar"})
		case errors.Is(err, domain.ErrStockInsuficiente):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_INSUFICIENTE", Message: "stock insuficiente para uno de los productos"})
		case errors.Is(err, domain.ErrNoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal o producto no encontrado"})
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de factura inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(factura)
}

// List GET /api/factura?buscar=
func (h *FacturaHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Query("buscar"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FacturasListResponse{Facturas: list})
}

// GetByID GET /api/factura/:id
func (h *FacturaHandler) GetByID(c *fiber.Ctx) error {
	factura, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if factura == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return c.JSON(factura)
}

// DownloadPDF GET /api/factura/:id/pdf
func (h *FacturaHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, nombre, err := h.pdfUC.DescargarFacturaPDF(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(pdfBytes)
}

// Delete DELETE /api/factura/:id
func (h *FacturaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MsgResponse{Msg: "factura eliminada"})
}
