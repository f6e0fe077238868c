package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/getlatam/getla-api/internal/application/dto"
	"github.com/getlatam/getla-api/internal/application/usecase"
	"github.com/getlatam/getla-api/internal/domain"
)

// InventarioHandler maneja categorías y productos de un dominio de inventario.
// Se instancia una vez por dominio: las rutas /api/repuestos, /api/dotacion y
// /api/limpieza comparten este mismo handler.
type InventarioHandler struct {
	uc      *usecase.InventarioUseCase
	dominio string
}

// NewInventarioHandler construye el handler atado a un dominio.
func NewInventarioHandler(uc *usecase.InventarioUseCase, dominio string) *InventarioHandler {
	return &InventarioHandler{uc: uc, dominio: dominio}
}

// CreateCategoria POST /api/{dominio}
func (h *InventarioHandler) CreateCategoria(c *fiber.Ctx) error {
	var in dto.CrearCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	categoria, err := h.uc.CrearCategoria(h.dominio, in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre e imagen son requeridos"})
		}
		if errors.Is(err, domain.ErrDuplicado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la categoría ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(categoria)
}

// ListCategorias GET /api/{dominio}?buscar=
func (h *InventarioHandler) ListCategorias(c *fiber.Ctx) error {
	list, err := h.uc.ListarCategorias(h.dominio, c.Query("buscar"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CategoriasListResponse{Categorias: list})
}

// GetCategoria GET /api/{dominio}/:id
func (h *InventarioHandler) GetCategoria(c *fiber.Ctx) error {
	categoria, err := h.uc.GetCategoria(h.dominio, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if categoria == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
	}
	return c.JSON(categoria)
}

// UpdateCategoria PUT /api/{dominio}/:id
func (h *InventarioHandler) UpdateCategoria(c *fiber.Ctx) error {
	var in dto.ActualizarCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	categoria, err := h.uc.ActualizarCategoria(h.dominio, c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if categoria == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
	}
	return c.JSON(categoria)
}

// DeleteCategoria DELETE /api/{dominio}/:id (arrastra sus productos)
func (h *InventarioHandler) DeleteCategoria(c *fiber.Ctx) error {
	if err := h.uc.EliminarCategoria(h.dominio, c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MsgResponse{Msg: "categoría eliminada"})
}

// CreateProducto POST /api/productos-{dominio}
func (h *InventarioHandler) CreateProducto(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CategoriaID == "" || in.Referencia == "" || in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "categoria, referencia y nombre son requeridos"})
	}
	producto, err := h.uc.CrearProducto(h.dominio, in)
	if err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la categoría no existe en este dominio"})
		}
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado o talla inválidos para este dominio"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(producto)
}

// ListProductos GET /api/productos-{dominio}?buscar=
func (h *InventarioHandler) ListProductos(c *fiber.Ctx) error {
	list, err := h.uc.ListarProductos(h.dominio, c.Query("buscar"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ProductosListResponse{Productos: list})
}

// ListProductosPorCategoria GET /api/productos-{dominio}/categoria/:categoriaId
func (h *InventarioHandler) ListProductosPorCategoria(c *fiber.Ctx) error {
	list, err := h.uc.ListarProductosPorCategoria(h.dominio, c.Params("categoriaId"), c.Query("buscar"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ProductosListResponse{Productos: list})
}

// GetProducto GET /api/productos-{dominio}/:id
func (h *InventarioHandler) GetProducto(c *fiber.Ctx) error {
	producto, err := h.uc.GetProducto(h.dominio, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if producto == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(producto)
}

// UpdateProducto PUT /api/productos-{dominio}/:id
func (h *InventarioHandler) UpdateProducto(c *fiber.Ctx) error {
	var in dto.ActualizarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	producto, err := h.uc.ActualizarProducto(h.dominio, c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado o talla inválidos para este dominio"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if producto == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(producto)
}

// DeleteProducto DELETE /api/productos-{dominio}/:id
func (h *InventarioHandler) DeleteProducto(c *fiber.Ctx) error {
	if err := h.uc.EliminarProducto(h.dominio, c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MsgResponse{Msg: "producto eliminado"})
}
