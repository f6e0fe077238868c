package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getlatam/getla-api/internal/application/dto"
	"github.com/getlatam/getla-api/internal/domain"
	"github.com/getlatam/getla-api/internal/domain/entity"
)

// categoriaRepoFake implementa repository.CategoriaRepository en memoria.
type categoriaRepoFake struct {
	porID map[string]*entity.Categoria
	orden []string
}

func newCategoriaRepoFake() *categoriaRepoFake {
	return &categoriaRepoFake{porID: map[string]*entity.Categoria{}}
}

func (f *categoriaRepoFake) Create(c *entity.Categoria) error {
	copia := *c
	f.porID[c.ID] = &copia
	f.orden = append(f.orden, c.ID)
	return nil
}

func (f *categoriaRepoFake) GetByID(dominio, id string) (*entity.Categoria, error) {
	c, ok := f.porID[id]
	if !ok || c.Dominio != dominio {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (f *categoriaRepoFake) Update(c *entity.Categoria) error {
	copia := *c
	f.porID[c.ID] = &copia
	return nil
}

func (f *categoriaRepoFake) ListByDominio(dominio string) ([]*entity.Categoria, error) {
	out := []*entity.Categoria{}
	for _, id := range f.orden {
		if c, ok := f.porID[id]; ok && c.Dominio == dominio {
			copia := *c
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *categoriaRepoFake) Delete(dominio, id string) error {
	delete(f.porID, id)
	return nil
}

// productoRepoInvFake implementa repository.ProductoRepository en memoria.
type productoRepoInvFake struct {
	porID map[string]*entity.Producto
	orden []string
}

func newProductoRepoInvFake() *productoRepoInvFake {
	return &productoRepoInvFake{porID: map[string]*entity.Producto{}}
}

func (f *productoRepoInvFake) Create(p *entity.Producto) error {
	copia := *p
	f.porID[p.ID] = &copia
	f.orden = append(f.orden, p.ID)
	return nil
}

func (f *productoRepoInvFake) GetByID(id string) (*entity.Producto, error) {
	p, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *productoRepoInvFake) Update(p *entity.Producto) error {
	copia := *p
	f.porID[p.ID] = &copia
	return nil
}

func (f *productoRepoInvFake) ListByDominio(dominio string) ([]*entity.Producto, error) {
	out := []*entity.Producto{}
	for _, id := range f.orden {
		if p, ok := f.porID[id]; ok && p.Dominio == dominio {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *productoRepoInvFake) ListByCategoria(dominio, categoriaID string) ([]*entity.Producto, error) {
	out := []*entity.Producto{}
	for _, id := range f.orden {
		if p, ok := f.porID[id]; ok && p.Dominio == dominio && p.CategoriaID == categoriaID {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *productoRepoInvFake) Delete(id string) error {
	delete(f.porID, id)
	return nil
}

func (f *productoRepoInvFake) DescontarStock(id string, cantidad int) error {
	p, ok := f.porID[id]
	if !ok {
		return domain.ErrNoEncontrado
	}
	if p.Stock < cantidad {
		return domain.ErrStockInsuficiente
	}
	p.Stock -= cantidad
	return nil
}

func entornoInventario(t *testing.T) (*InventarioUseCase, *categoriaRepoFake, *productoRepoInvFake) {
	t.Helper()
	categorias := newCategoriaRepoFake()
	productos := newProductoRepoInvFake()
	return NewInventarioUseCase(categorias, productos), categorias, productos
}

func crearCategoriaDePrueba(t *testing.T, uc *InventarioUseCase, dominio, nombre string) *dto.CategoriaResponse {
	t.Helper()
	resp, err := uc.CrearCategoria(dominio, dto.CrearCategoriaRequest{
		Nombre: nombre,
		Imagen: "https://cdn.getla.com/" + nombre + ".png",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	return resp
}

// Caso 1: las categorías viven acotadas a su dominio; el mismo nombre puede
// existir en repuestos y en limpieza sin estorbarse.
func TestCategoria_AcotadaPorDominio(t *testing.T) {
	uc, _, _ := entornoInventario(t)
	crearCategoriaDePrueba(t, uc, entity.DominioRepuestos, "Filtros")
	crearCategoriaDePrueba(t, uc, entity.DominioLimpieza, "Filtros")
	crearCategoriaDePrueba(t, uc, entity.DominioRepuestos, "Correas")

	repuestos, err := uc.ListarCategorias(entity.DominioRepuestos, "")
	require.NoError(t, err)
	assert.Len(t, repuestos, 2)

	limpieza, err := uc.ListarCategorias(entity.DominioLimpieza, "")
	require.NoError(t, err)
	assert.Len(t, limpieza, 1)

	_, err = uc.ListarCategorias("mantencion", "")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "mantencion no es un dominio de inventario")
}

// Caso 2: crear categoría exige nombre e imagen.
func TestCrearCategoria_CamposRequeridos(t *testing.T) {
	uc, _, _ := entornoInventario(t)

	_, err := uc.CrearCategoria(entity.DominioRepuestos, dto.CrearCategoriaRequest{Nombre: "  ", Imagen: "x"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = uc.CrearCategoria(entity.DominioRepuestos, dto.CrearCategoriaRequest{Nombre: "Filtros"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// Caso 3: un producto requiere que su categoría exista en el mismo dominio.
func TestCrearProducto_CategoriaDeOtroDominio(t *testing.T) {
	uc, _, _ := entornoInventario(t)
	filtros := crearCategoriaDePrueba(t, uc, entity.DominioRepuestos, "Filtros")

	_, err := uc.CrearProducto(entity.DominioDotacion, dto.CrearProductoRequest{
		CategoriaID: filtros.ID,
		Referencia:  "REF-1",
		Nombre:      "Guante",
		Imagen:      "https://cdn.getla.com/guante.png",
	})
	assert.ErrorIs(t, err, domain.ErrNoEncontrado,
		"una categoría de repuestos no sirve para un producto de dotación")
}

// Caso 4: estado por defecto OK; REPARACIÓN solo en repuestos; talla solo en dotación.
func TestCrearProducto_EstadoYTallaPorDominio(t *testing.T) {
	uc, _, _ := entornoInventario(t)
	filtros := crearCategoriaDePrueba(t, uc, entity.DominioRepuestos, "Filtros")
	uniformes := crearCategoriaDePrueba(t, uc, entity.DominioDotacion, "Uniformes")

	resp, err := uc.CrearProducto(entity.DominioRepuestos, dto.CrearProductoRequest{
		CategoriaID: filtros.ID, Referencia: "REF-1", Nombre: "Filtro aceite",
		Imagen: "https://cdn.getla.com/f.png",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoOK, resp.Estado, "sin estado entregado se asume OK")

	resp, err = uc.CrearProducto(entity.DominioRepuestos, dto.CrearProductoRequest{
		CategoriaID: filtros.ID, Referencia: "REF-2", Nombre: "Bomba",
		Imagen: "https://cdn.getla.com/b.png", Estado: entity.EstadoReparacion,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoReparacion, resp.Estado)

	_, err = uc.CrearProducto(entity.DominioDotacion, dto.CrearProductoRequest{
		CategoriaID: uniformes.ID, Referencia: "REF-3", Nombre: "Casco",
		Imagen: "https://cdn.getla.com/c.png", Estado: entity.EstadoReparacion,
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "REPARACIÓN no existe fuera de repuestos")

	resp, err = uc.CrearProducto(entity.DominioDotacion, dto.CrearProductoRequest{
		CategoriaID: uniformes.ID, Referencia: "REF-4", Nombre: "Overol",
		Talla: "L", Imagen: "https://cdn.getla.com/o.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "L", resp.Talla)

	_, err = uc.CrearProducto(entity.DominioRepuestos, dto.CrearProductoRequest{
		CategoriaID: filtros.ID, Referencia: "REF-5", Nombre: "Correa",
		Talla: "M", Imagen: "https://cdn.getla.com/co.png",
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "talla solo aplica a dotación")
}

// Caso 5: precio y stock negativos se rechazan en alta y en actualización.
func TestProducto_PrecioYStockNegativos(t *testing.T) {
	uc, _, _ := entornoInventario(t)
	filtros := crearCategoriaDePrueba(t, uc, entity.DominioRepuestos, "Filtros")

	_, err := uc.CrearProducto(entity.DominioRepuestos, dto.CrearProductoRequest{
		CategoriaID: filtros.ID, Referencia: "REF-1", Nombre: "Filtro",
		Imagen: "https://cdn.getla.com/f.png", Stock: -1,
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	creado, err := uc.CrearProducto(entity.DominioRepuestos, dto.CrearProductoRequest{
		CategoriaID: filtros.ID, Referencia: "REF-1", Nombre: "Filtro",
		Imagen: "https://cdn.getla.com/f.png", Stock: 4,
		Precio: decimal.NewFromInt(1200),
	})
	require.NoError(t, err)

	precioNegativo := decimal.NewFromInt(-10)
	_, err = uc.ActualizarProducto(entity.DominioRepuestos, creado.ID, dto.ActualizarProductoRequest{
		Precio: &precioNegativo,
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	stockNuevo := 0
	resp, err := uc.ActualizarProducto(entity.DominioRepuestos, creado.ID, dto.ActualizarProductoRequest{
		Stock: &stockNuevo,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stock, "stock cero es válido, negativo no")
}

// Caso 6: un producto no es visible desde otro dominio.
func TestGetProducto_DominioCruzado(t *testing.T) {
	uc, _, _ := entornoInventario(t)
	filtros := crearCategoriaDePrueba(t, uc, entity.DominioRepuestos, "Filtros")
	creado, err := uc.CrearProducto(entity.DominioRepuestos, dto.CrearProductoRequest{
		CategoriaID: filtros.ID, Referencia: "REF-1", Nombre: "Filtro",
		Imagen: "https://cdn.getla.com/f.png",
	})
	require.NoError(t, err)

	resp, err := uc.GetProducto(entity.DominioLimpieza, creado.ID)
	require.NoError(t, err)
	assert.Nil(t, resp, "el ID existe pero pertenece a repuestos")

	err = uc.EliminarProducto(entity.DominioLimpieza, creado.ID)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

// Caso 7: el filtro ?buscar= de productos coincide por referencia o nombre.
func TestListarProductos_FiltroBuscar(t *testing.T) {
	uc, _, _ := entornoInventario(t)
	filtros := crearCategoriaDePrueba(t, uc, entity.DominioRepuestos, "Filtros")
	for _, p := range []struct{ ref, nombre string }{
		{"FLT-100", "Filtro de aceite"},
		{"BMB-200", "Bomba de agua"},
		{"FLT-300", "Filtro de aire"},
	} {
		_, err := uc.CrearProducto(entity.DominioRepuestos, dto.CrearProductoRequest{
			CategoriaID: filtros.ID, Referencia: p.ref, Nombre: p.nombre,
			Imagen: "https://cdn.getla.com/p.png",
		})
		require.NoError(t, err)
	}

	lista, err := uc.ListarProductos(entity.DominioRepuestos, "flt")
	require.NoError(t, err)
	require.Len(t, lista, 2, "coincide por referencia sin importar mayúsculas")
	assert.Equal(t, "FLT-100", lista[0].Referencia)
	assert.Equal(t, "FLT-300", lista[1].Referencia)

	lista, err = uc.ListarProductos(entity.DominioRepuestos, "bomba")
	require.NoError(t, err)
	require.Len(t, lista, 1, "coincide por nombre")

	lista, err = uc.ListarProductosPorCategoria(entity.DominioRepuestos, filtros.ID, "aire")
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "Filtro de aire", lista[0].Nombre)
}

// Caso 8: eliminar la categoría arrastra la consulta de sus productos.
func TestEliminarCategoria_Inexistente(t *testing.T) {
	uc, _, _ := entornoInventario(t)

	err := uc.EliminarCategoria(entity.DominioRepuestos, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}
