package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/getlatam/getla-api/internal/application/dto"
	"github.com/getlatam/getla-api/internal/domain"
	"github.com/getlatam/getla-api/internal/domain/entity"
	"github.com/getlatam/getla-api/internal/domain/repository"
)

// InventarioUseCase maneja categorías y productos de los tres dominios de
// inventario (repuestos, dotación, limpieza). Todas las operaciones reciben el
// dominio explícito; la misma lógica sirve a las tres vistas de la consola.
type InventarioUseCase struct {
	categorias repository.CategoriaRepository
	productos  repository.ProductoRepository
}

// NewInventarioUseCase construye el caso de uso.
func NewInventarioUseCase(categorias repository.CategoriaRepository, productos repository.ProductoRepository) *InventarioUseCase {
	return &InventarioUseCase{categorias: categorias, productos: productos}
}

// CrearCategoria registra una categoría dentro del dominio.
func (uc *InventarioUseCase) CrearCategoria(dominio string, in dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	if !entity.DominioValido(dominio) {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	categoria := &entity.Categoria{
		ID:        uuid.New().String(),
		Dominio:   dominio,
		Nombre:    strings.TrimSpace(in.Nombre),
		Imagen:    strings.TrimSpace(in.Imagen),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if categoria.Nombre == "" || categoria.Imagen == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if err := uc.categorias.Create(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// ListarCategorias devuelve las categorías del dominio, con filtro substring
// case-insensitive sobre el nombre.
func (uc *InventarioUseCase) ListarCategorias(dominio, buscar string) ([]*dto.CategoriaResponse, error) {
	if !entity.DominioValido(dominio) {
		return nil, domain.ErrEntradaInvalida
	}
	lista, err := uc.categorias.ListByDominio(dominio)
	if err != nil {
		return nil, err
	}
	termino := strings.ToLower(strings.TrimSpace(buscar))
	out := make([]*dto.CategoriaResponse, 0, len(lista))
	for _, c := range lista {
		if termino != "" && !strings.Contains(strings.ToLower(c.Nombre), termino) {
			continue
		}
		out = append(out, toCategoriaResponse(c))
	}
	return out, nil
}

// GetCategoria obtiene una categoría del dominio. (nil, nil) si no existe.
func (uc *InventarioUseCase) GetCategoria(dominio, id string) (*dto.CategoriaResponse, error) {
	categoria, err := uc.categorias.GetByID(dominio, id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, nil
	}
	return toCategoriaResponse(categoria), nil
}

// ActualizarCategoria modifica los campos entregados de la categoría.
func (uc *InventarioUseCase) ActualizarCategoria(dominio, id string, in dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	categoria, err := uc.categorias.GetByID(dominio, id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, nil
	}
	if in.Nombre != "" {
		categoria.Nombre = strings.TrimSpace(in.Nombre)
	}
	if in.Imagen != "" {
		categoria.Imagen = strings.TrimSpace(in.Imagen)
	}
	categoria.UpdatedAt = time.Now()
	if err := uc.categorias.Update(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// EliminarCategoria borra la categoría y en cascada sus productos.
func (uc *InventarioUseCase) EliminarCategoria(dominio, id string) error {
	categoria, err := uc.categorias.GetByID(dominio, id)
	if err != nil {
		return err
	}
	if categoria == nil {
		return domain.ErrNoEncontrado
	}
	return uc.categorias.Delete(dominio, id)
}

// CrearProducto registra un producto dentro de una categoría existente del
// dominio. Valida estado contra el dominio y rechaza talla fuera de dotación.
func (uc *InventarioUseCase) CrearProducto(dominio string, in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if !entity.DominioValido(dominio) {
		return nil, domain.ErrEntradaInvalida
	}
	categoria, err := uc.categorias.GetByID(dominio, in.CategoriaID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNoEncontrado
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.EstadoOK
	}
	if !entity.EstadoValido(dominio, estado) {
		return nil, domain.ErrEntradaInvalida
	}
	talla := strings.TrimSpace(in.Talla)
	if talla != "" && dominio != entity.DominioDotacion {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Stock < 0 || in.Precio.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:          uuid.New().String(),
		CategoriaID: categoria.ID,
		Dominio:     dominio,
		Referencia:  strings.TrimSpace(in.Referencia),
		Nombre:      strings.TrimSpace(in.Nombre),
		Descripcion: strings.TrimSpace(in.Descripcion),
		Talla:       talla,
		Precio:      in.Precio,
		Stock:       in.Stock,
		Imagen:      strings.TrimSpace(in.Imagen),
		Estado:      estado,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productos.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// ListarProductos devuelve los productos del dominio, con filtro substring
// case-insensitive sobre la referencia o el nombre.
func (uc *InventarioUseCase) ListarProductos(dominio, buscar string) ([]*dto.ProductoResponse, error) {
	if !entity.DominioValido(dominio) {
		return nil, domain.ErrEntradaInvalida
	}
	lista, err := uc.productos.ListByDominio(dominio)
	if err != nil {
		return nil, err
	}
	return filtrarProductos(lista, buscar), nil
}

// ListarProductosPorCategoria devuelve los productos de una categoría del dominio.
func (uc *InventarioUseCase) ListarProductosPorCategoria(dominio, categoriaID, buscar string) ([]*dto.ProductoResponse, error) {
	if !entity.DominioValido(dominio) {
		return nil, domain.ErrEntradaInvalida
	}
	lista, err := uc.productos.ListByCategoria(dominio, categoriaID)
	if err != nil {
		return nil, err
	}
	return filtrarProductos(lista, buscar), nil
}

// GetProducto obtiene un producto del dominio. (nil, nil) si no existe o
// pertenece a otro dominio.
func (uc *InventarioUseCase) GetProducto(dominio, id string) (*dto.ProductoResponse, error) {
	producto, err := uc.productos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil || producto.Dominio != dominio {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// ActualizarProducto modifica los campos entregados del producto.
func (uc *InventarioUseCase) ActualizarProducto(dominio, id string, in dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.productos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil || producto.Dominio != dominio {
		return nil, nil
	}
	if in.Estado != "" {
		if !entity.EstadoValido(dominio, in.Estado) {
			return nil, domain.ErrEntradaInvalida
		}
		producto.Estado = in.Estado
	}
	if in.Talla != "" {
		if dominio != entity.DominioDotacion {
			return nil, domain.ErrEntradaInvalida
		}
		producto.Talla = strings.TrimSpace(in.Talla)
	}
	if in.Referencia != "" {
		producto.Referencia = strings.TrimSpace(in.Referencia)
	}
	if in.Nombre != "" {
		producto.Nombre = strings.TrimSpace(in.Nombre)
	}
	if in.Descripcion != "" {
		producto.Descripcion = strings.TrimSpace(in.Descripcion)
	}
	if in.Imagen != "" {
		producto.Imagen = strings.TrimSpace(in.Imagen)
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		producto.Precio = *in.Precio
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrEntradaInvalida
		}
		producto.Stock = *in.Stock
	}
	producto.UpdatedAt = time.Now()
	if err := uc.productos.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// EliminarProducto borra el producto del dominio.
func (uc *InventarioUseCase) EliminarProducto(dominio, id string) error {
	producto, err := uc.productos.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil || producto.Dominio != dominio {
		return domain.ErrNoEncontrado
	}
	return uc.productos.Delete(id)
}

func filtrarProductos(lista []*entity.Producto, buscar string) []*dto.ProductoResponse {
	termino := strings.ToLower(strings.TrimSpace(buscar))
	out := make([]*dto.ProductoResponse, 0, len(lista))
	for _, p := range lista {
		if termino != "" &&
			!strings.Contains(strings.ToLower(p.Referencia), termino) &&
			!strings.Contains(strings.ToLower(p.Nombre), termino) {
			continue
		}
		out = append(out, toProductoResponse(p))
	}
	return out
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		ID:      c.ID,
		Dominio: c.Dominio,
		Nombre:  c.Nombre,
		Imagen:  c.Imagen,
	}
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:          p.ID,
		CategoriaID: p.CategoriaID,
		Dominio:     p.Dominio,
		Referencia:  p.Referencia,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Talla:       p.Talla,
		Precio:      p.Precio,
		Stock:       p.Stock,
		Imagen:      p.Imagen,
		Estado:      p.Estado,
	}
}
