package facturacion

import (
	"context"

	"github.com/getlatam/getla-api/internal/domain/entity"
	"github.com/getlatam/getla-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los repos
// de clientes, productos y facturas. Si fn retorna error la transacción
// completa se revierte (descuento de stock incluido).
type TxRunner interface {
	RunFacturacion(ctx context.Context, fn func(
		clienteRepo repository.ClienteRepository,
		productoRepo repository.ProductoRepository,
		facturaRepo repository.FacturaRepository,
	) error) error
}

// LineaPDF línea de factura enriquecida para la representación gráfica.
type LineaPDF struct {
	entity.LineaFactura
	ProductoNombre string
}

// GeneradorPDF produce la representación gráfica de una factura.
type GeneradorPDF interface {
	GenerarFacturaPDF(ctx context.Context, factura *entity.Factura, cabecera *entity.Cabecera, cliente *entity.Cliente, lineas []LineaPDF) ([]byte, error)
}
