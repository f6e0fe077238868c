package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Factura representa la cabecera de una factura emitida por una sucursal.
// Totales: Subtotal = suma de líneas; IVA se calcula sobre (Subtotal - Descuento);
// Total = Subtotal - Descuento + IVA.
type Factura struct {
	ID            string
	NumeroFactura string // consecutivo "F-000001"
	CabeceraID    string
	ClienteID     string
	Subtotal      decimal.Decimal
	Descuento     decimal.Decimal
	IVA           decimal.Decimal
	Total         decimal.Decimal
	CreatedAt     time.Time
}

// LineaFactura es una línea de detalle de la factura.
type LineaFactura struct {
	ID             string
	FacturaID      string
	ProductoID     string
	Dominio        string // repuestos, dotacion, limpieza
	Descripcion    string
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	TotalLinea     decimal.Decimal
}
