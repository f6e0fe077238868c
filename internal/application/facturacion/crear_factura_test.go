package facturacion_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getlatam/getla-api/internal/application/dto"
	"github.com/getlatam/getla-api/internal/application/facturacion"
	"github.com/getlatam/getla-api/internal/domain"
	"github.com/getlatam/getla-api/internal/domain/entity"
	"github.com/getlatam/getla-api/internal/domain/repository"
)

type clienteRepoFake struct {
	porID   map[string]*entity.Cliente
	compras map[string]int
}

func newClienteRepoFake() *clienteRepoFake {
	return &clienteRepoFake{porID: map[string]*entity.Cliente{}, compras: map[string]int{}}
}

func (r *clienteRepoFake) Create(c *entity.Cliente) error {
	r.porID[c.ID] = c
	return nil
}
func (r *clienteRepoFake) GetByID(id string) (*entity.Cliente, error) { return r.porID[id], nil }
func (r *clienteRepoFake) GetByNit(nit string) (*entity.Cliente, error) {
	for _, c := range r.porID {
		if c.Nit == nit {
			return c, nil
		}
	}
	return nil, nil
}
func (r *clienteRepoFake) Update(c *entity.Cliente) error { r.porID[c.ID] = c; return nil }
func (r *clienteRepoFake) IncrementarCompras(id string) error {
	r.compras[id]++
	return nil
}
func (r *clienteRepoFake) List() ([]*entity.Cliente, error) {
	out := []*entity.Cliente{}
	for _, c := range r.porID {
		out = append(out, c)
	}
	return out, nil
}
func (r *clienteRepoFake) Delete(id string) error { delete(r.porID, id); return nil }

type productoRepoFake struct {
	porID map[string]*entity.Producto
}

func (r *productoRepoFake) Create(p *entity.Producto) error {
	r.porID[p.ID] = p
	return nil
}

func (r *productoRepoFake) GetByID(id string) (*entity.Producto, error) {
	return r.porID[id], nil
}

func (r *productoRepoFake) Update(p *entity.Producto) error {
	r.porID[p.ID] = p
	return nil
}

func (r *productoRepoFake) ListByDominio(string) ([]*entity.Producto, error) {
	return nil, nil
}
func (r *productoRepoFake) ListByCategoria(string, string) ([]*entity.Producto, error) {
	return nil, nil
}
func (r *productoRepoFake) Delete(id string) error { delete(r.porID, id); return nil }
func (r *productoRepoFake) DescontarStock(id string, cantidad int) error {
	p := r.porID[id]
	if p == nil {
		return domain.ErrNoEncontrado
	}
	if p.Stock < cantidad {
		return domain.ErrStockInsuficiente
	}
	p.Stock -= cantidad
	return nil
}

type facturaRepoFake struct {
	facturas map[string]*entity.Factura
	lineas   []*entity.LineaFactura
	numero   int64
}

func newFacturaRepoFake() *facturaRepoFake {
	return &facturaRepoFake{facturas: map[string]*entity.Factura{}}
}

func (r *facturaRepoFake) Create(f *entity.Factura) error {
	r.facturas[f.ID] = f
	return nil
}

func (r *facturaRepoFake) CreateLinea(l *entity.LineaFactura) error {
	r.lineas = append(r.lineas, l)
	return nil
}

func (r *facturaRepoFake) GetByID(id string) (*entity.Factura, error) {
	return r.facturas[id], nil
}
func (r *facturaRepoFake) GetLineasByFacturaID(facturaID string) ([]*entity.LineaFactura, error) {
	out := []*entity.LineaFactura{}
	for _, l := range r.lineas {
		if l.FacturaID == facturaID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (r *facturaRepoFake) List() ([]*entity.Factura, error) {
	out := []*entity.Factura{}
	for _, f := range r.facturas {
		out = append(out, f)
	}
	return out, nil
}
func (r *facturaRepoFake) Delete(id string) error { delete(r.facturas, id); return nil }
func (r *facturaRepoFake) ProximoNumero() (int64, error) {
	r.numero++
	return r.numero, nil
}

type cabeceraRepoFake struct {
	porID map[string]*entity.Cabecera
}

func (r *cabeceraRepoFake) Create(c *entity.Cabecera) error {
	r.porID[c.ID] = c
	return nil
}

func (r *cabeceraRepoFake) GetByID(id string) (*entity.Cabecera, error) {
	return r.porID[id], nil
}

func (r *cabeceraRepoFake) Update(c *entity.Cabecera) error {
	r.porID[c.ID] = c
	return nil
}

func (r *cabeceraRepoFake) List() ([]*entity.Cabecera, error) {
	return nil, nil
}

func (r *cabeceraRepoFake) Delete(id string) error {
	delete(r.porID, id)
	return nil
}

// txRunnerFake pasa los mismos fakes a la función; no hay rollback real, los
// tests verifican que las escrituras posteriores al fallo nunca ocurren.
type txRunnerFake struct {
	clientes  repository.ClienteRepository
	productos repository.ProductoRepository
	facturas  repository.FacturaRepository
}

func (t *txRunnerFake) RunFacturacion(_ context.Context, fn func(
	repository.ClienteRepository,
	repository.ProductoRepository,
	repository.FacturaRepository,
) error) error {
	return fn(t.clientes, t.productos, t.facturas)
}

type entorno struct {
	uc        *facturacion.FacturaUseCase
	clientes  *clienteRepoFake
	productos *productoRepoFake
	facturas  *facturaRepoFake
}

func nuevoEntorno() *entorno {
	clientes := newClienteRepoFake()
	productos := &productoRepoFake{porID: map[string]*entity.Producto{
		"p-1": {ID: "p-1", Dominio: entity.DominioRepuestos, Nombre: "Filtro de aceite", Precio: decimal.NewFromInt(1000), Stock: 10},
		"p-2": {ID: "p-2", Dominio: entity.DominioDotacion, Nombre: "Overol talla M", Precio: decimal.NewFromInt(500), Stock: 2},
	}}
	facturas := newFacturaRepoFake()
	cabeceras := &cabeceraRepoFake{porID: map[string]*entity.Cabecera{
		"cab-1": {ID: "cab-1", Local: "GETLA Centro", Nit: "900123456"},
	}}
	tx := &txRunnerFake{clientes: clientes, productos: productos, facturas: facturas}
	return &entorno{
		uc:        facturacion.NewFacturaUseCase(tx, cabeceras, clientes, productos, facturas),
		clientes:  clientes,
		productos: productos,
		facturas:  facturas,
	}
}

// NIT desconocido sin la confirmación de crear cliente: la factura completa se
// aborta y no se descuenta stock.
func TestCrear_NitDesconocidoSinConfirmacionAborta(t *testing.T) {
	e := nuevoEntorno()

	_, err := e.uc.Crear(context.Background(), dto.CrearFacturaRequest{
		CabeceraID: "cab-1",
		Cliente:    &dto.ClienteInlineRequest{Nombre: "Pedro", Nit: "11.222.333-4"},
		Lineas: []dto.LineaFacturaRequest{
			{ProductoID: "p-1", Cantidad: decimal.NewFromInt(2)},
		},
	})
	require.ErrorIs(t, err, domain.ErrClienteNoExiste)
	assert.Empty(t, e.clientes.porID, "no debe crearse el cliente")
	assert.Empty(t, e.facturas.facturas, "no debe crearse la factura")
	assert.Equal(t, 10, e.productos.porID["p-1"].Stock, "el stock no debe moverse")
}

// Con la confirmación, el cliente se crea con NIT normalizado y la factura sale
// con el primer consecutivo.
func TestCrear_ConConfirmacionCreaClienteYFactura(t *testing.T) {
	e := nuevoEntorno()

	resp, err := e.uc.Crear(context.Background(), dto.CrearFacturaRequest{
		CabeceraID: "cab-1",
		Cliente:    &dto.ClienteInlineRequest{Nombre: "Pedro", Nit: "  11.222.333-K ", CrearCliente: true},
		Lineas: []dto.LineaFacturaRequest{
			{ProductoID: "p-1", Cantidad: decimal.NewFromInt(2)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "F-000001", resp.NumeroFactura)
	assert.Equal(t, "Pedro", resp.ClienteNombre)

	cliente, _ := e.clientes.GetByNit("11.222.333-k")
	require.NotNil(t, cliente, "el cliente debe quedar registrado con NIT normalizado")
	assert.Equal(t, 1, e.clientes.compras[cliente.ID], "compras debe incrementarse")
	assert.Equal(t, 8, e.productos.porID["p-1"].Stock)
}

// Totales: subtotal suma de líneas, IVA 19% sobre la base (subtotal menos
// descuento), precio cero toma el vigente del producto.
func TestCrear_TotalesConDescuentoEIVA(t *testing.T) {
	e := nuevoEntorno()
	cliente := &entity.Cliente{ID: "c-1", Nombre: "Ana", Nit: "9.876.543-2", CreatedAt: time.Now()}
	require.NoError(t, e.clientes.Create(cliente))

	resp, err := e.uc.Crear(context.Background(), dto.CrearFacturaRequest{
		CabeceraID: "cab-1",
		ClienteID:  "c-1",
		Descuento:  decimal.NewFromInt(500),
		Lineas: []dto.LineaFacturaRequest{
			{ProductoID: "p-1", Cantidad: decimal.NewFromInt(2)}, // 2 x 1000 (precio del producto)
			{ProductoID: "p-2", Cantidad: decimal.NewFromInt(1), PrecioUnitario: decimal.NewFromInt(400)},
		},
	})
	require.NoError(t, err)

	// subtotal 2400, base 1900, iva 361, total 2261
	assert.True(t, decimal.NewFromInt(2400).Equal(resp.Subtotal), "subtotal %s", resp.Subtotal)
	assert.True(t, decimal.NewFromInt(500).Equal(resp.Descuento))
	assert.True(t, decimal.NewFromInt(361).Equal(resp.IVA), "iva %s", resp.IVA)
	assert.True(t, decimal.NewFromInt(2261).Equal(resp.Total), "total %s", resp.Total)
	require.Len(t, resp.Lineas, 2)
	assert.Equal(t, "Filtro de aceite", resp.Lineas[0].Descripcion)
}

// Stock insuficiente en cualquier línea aborta la factura completa.
func TestCrear_StockInsuficienteAborta(t *testing.T) {
	e := nuevoEntorno()
	require.NoError(t, e.clientes.Create(&entity.Cliente{ID: "c-1", Nombre: "Ana", Nit: "1-9"}))

	_, err := e.uc.Crear(context.Background(), dto.CrearFacturaRequest{
		CabeceraID: "cab-1",
		ClienteID:  "c-1",
		Lineas: []dto.LineaFacturaRequest{
			{ProductoID: "p-2", Cantidad: decimal.NewFromInt(5)}, // stock 2
		},
	})
	require.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.Empty(t, e.facturas.facturas)
	assert.Empty(t, e.facturas.lineas)
	assert.Zero(t, e.clientes.compras["c-1"])
}

// La consola permite emitir con el carrito vacío: factura en cero.
func TestCrear_SinLineasEmiteEnCero(t *testing.T) {
	e := nuevoEntorno()
	require.NoError(t, e.clientes.Create(&entity.Cliente{ID: "c-1", Nombre: "Ana", Nit: "1-9"}))

	resp, err := e.uc.Crear(context.Background(), dto.CrearFacturaRequest{
		CabeceraID: "cab-1",
		ClienteID:  "c-1",
	})
	require.NoError(t, err)
	assert.True(t, resp.Subtotal.IsZero())
	assert.True(t, resp.Total.IsZero())
	assert.Empty(t, resp.Lineas)
}

// Cantidad fraccionaria o no positiva es entrada inválida.
func TestCrear_CantidadInvalida(t *testing.T) {
	e := nuevoEntorno()
	require.NoError(t, e.clientes.Create(&entity.Cliente{ID: "c-1", Nombre: "Ana", Nit: "1-9"}))

	for _, cantidad := range []decimal.Decimal{decimal.NewFromFloat(1.5), decimal.Zero, decimal.NewFromInt(-1)} {
		_, err := e.uc.Crear(context.Background(), dto.CrearFacturaRequest{
			CabeceraID: "cab-1",
			ClienteID:  "c-1",
			Lineas: []dto.LineaFacturaRequest{
				{ProductoID: "p-1", Cantidad: cantidad},
			},
		})
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "cantidad %s", cantidad)
	}
}

// El consecutivo avanza por factura emitida.
func TestCrear_ConsecutivoAvanza(t *testing.T) {
	e := nuevoEntorno()
	require.NoError(t, e.clientes.Create(&entity.Cliente{ID: "c-1", Nombre: "Ana", Nit: "1-9"}))

	for i, esperado := range []string{"F-000001", "F-000002", "F-000003"} {
		resp, err := e.uc.Crear(context.Background(), dto.CrearFacturaRequest{
			CabeceraID: "cab-1",
			ClienteID:  "c-1",
		})
		require.NoError(t, err, "factura %d", i)
		assert.Equal(t, esperado, resp.NumeroFactura)
	}
}
