package dto

import "github.com/shopspring/decimal"

// LineaFacturaRequest una línea del payload de creación.
// PrecioUnitario cero toma el precio vigente del producto.
type LineaFacturaRequest struct {
	ProductoID     string          `json:"producto" validate:"required"`
	Dominio        string          `json:"dominio" validate:"required"`
	Cantidad       decimal.Decimal `json:"cantidad" validate:"required"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// ClienteInlineRequest datos de cliente embebidos en la creación de factura.
// Con CrearCliente=true y un NIT desconocido, el caso de uso crea el cliente
// antes de la factura (confirmación del prompt de la consola); sin la bandera
// la factura completa se aborta.
type ClienteInlineRequest struct {
	Nombre       string `json:"nombre"`
	Nit          string `json:"nit"`
	Direccion    string `json:"direccion"`
	Ciudad       string `json:"ciudad"`
	Telefono     string `json:"telefono"`
	CrearCliente bool   `json:"crearCliente"`
}

// CrearFacturaRequest entrada para crear una factura.
// Cliente por referencia (ClienteID) o inline (Cliente, buscar-o-crear por NIT).
type CrearFacturaRequest struct {
	CabeceraID string                `json:"cabecera" validate:"required"`
	ClienteID  string                `json:"cliente"`
	Cliente    *ClienteInlineRequest `json:"clienteNuevo"`
	Lineas     []LineaFacturaRequest `json:"productos"`
	Descuento  decimal.Decimal       `json:"descuento"`
}

// LineaFacturaResponse una línea de la factura.
type LineaFacturaResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto"`
	Dominio        string          `json:"dominio"`
	Descripcion    string          `json:"descripcion"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	TotalLinea     decimal.Decimal `json:"totalLinea"`
}

// FacturaResponse salida de una factura con detalle.
type FacturaResponse struct {
	ID            string                 `json:"id"`
	NumeroFactura string                 `json:"numeroFactura"`
	CabeceraID    string                 `json:"cabecera"`
	ClienteID     string                 `json:"cliente"`
	ClienteNombre string                 `json:"clienteNombre,omitempty"`
	Lineas        []LineaFacturaResponse `json:"productos"`
	Subtotal      decimal.Decimal        `json:"subtotal"`
	Descuento     decimal.Decimal        `json:"descuento"`
	IVA           decimal.Decimal        `json:"iva"`
	Total         decimal.Decimal        `json:"total"`
	Fecha         string                 `json:"fecha"`
}

// FacturasListResponse listado envuelto bajo su clave de entidad.
type FacturasListResponse struct {
	Facturas []*FacturaResponse `json:"facturas"`
}
