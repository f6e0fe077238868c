package facturacion

import (
	"context"
	"fmt"

	"github.com/getlatam/getla-api/internal/domain"
	"github.com/getlatam/getla-api/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura.
type PDFUseCase struct {
	facturaRepo  repository.FacturaRepository
	cabeceraRepo repository.CabeceraRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
	generador    GeneradorPDF
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	facturaRepo repository.FacturaRepository,
	cabeceraRepo repository.CabeceraRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	generador GeneradorPDF,
) *PDFUseCase {
	return &PDFUseCase{
		facturaRepo:  facturaRepo,
		cabeceraRepo: cabeceraRepo,
		clienteRepo:  clienteRepo,
		productoRepo: productoRepo,
		generador:    generador,
	}
}

// DescargarFacturaPDF recupera la factura con su sucursal, cliente y líneas y
// genera el PDF.
//
// Retorna:
//   - (pdfBytes, nombreArchivo, nil) si todo sale bien.
//   - domain.ErrNoEncontrado         si la factura no existe.
func (uc *PDFUseCase) DescargarFacturaPDF(ctx context.Context, facturaID string) (pdfBytes []byte, nombreArchivo string, err error) {
	factura, err := uc.facturaRepo.GetByID(facturaID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if factura == nil {
		return nil, "", domain.ErrNoEncontrado
	}

	cabecera, err := uc.cabeceraRepo.GetByID(factura.CabeceraID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener sucursal: %w", err)
	}
	if cabecera == nil {
		return nil, "", fmt.Errorf("pdf: sucursal %s: %w", factura.CabeceraID, domain.ErrNoEncontrado)
	}

	cliente, err := uc.clienteRepo.GetByID(factura.ClienteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if cliente == nil {
		return nil, "", fmt.Errorf("pdf: cliente %s: %w", factura.ClienteID, domain.ErrNoEncontrado)
	}

	lineasRaw, err := uc.facturaRepo.GetLineasByFacturaID(facturaID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}

	lineas := make([]LineaPDF, 0, len(lineasRaw))
	for _, l := range lineasRaw {
		nombre := l.Descripcion
		if nombre == "" {
			if producto, pErr := uc.productoRepo.GetByID(l.ProductoID); pErr == nil && producto != nil {
				nombre = producto.Nombre
			} else {
				nombre = "Producto " + l.ProductoID
			}
		}
		lineas = append(lineas, LineaPDF{LineaFactura: *l, ProductoNombre: nombre})
	}

	pdfBytes, err = uc.generador.GenerarFacturaPDF(ctx, factura, cabecera, cliente, lineas)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	nombreArchivo = fmt.Sprintf("factura_%s.pdf", factura.NumeroFactura)
	return pdfBytes, nombreArchivo, nil
}
