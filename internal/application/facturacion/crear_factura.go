package facturacion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/getlatam/getla-api/internal/application/dto"
	"github.com/getlatam/getla-api/internal/domain"
	"github.com/getlatam/getla-api/internal/domain/entity"
	"github.com/getlatam/getla-api/internal/domain/repository"
)

// tasaIVA aplica sobre la base gravable (subtotal menos descuento).
var tasaIVA = decimal.NewFromFloat(0.19)

// FacturaUseCase crea facturas descontando el inventario en una sola
// transacción, y las lista, obtiene y elimina.
type FacturaUseCase struct {
	txRunner     TxRunner
	cabeceraRepo repository.CabeceraRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
	facturaRepo  repository.FacturaRepository
}

// NewFacturaUseCase construye el caso de uso.
func NewFacturaUseCase(
	txRunner TxRunner,
	cabeceraRepo repository.CabeceraRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	facturaRepo repository.FacturaRepository,
) *FacturaUseCase {
	return &FacturaUseCase{
		txRunner:     txRunner,
		cabeceraRepo: cabeceraRepo,
		clienteRepo:  clienteRepo,
		productoRepo: productoRepo,
		facturaRepo:  facturaRepo,
	}
}

// Crear emite la factura: resuelve el cliente (por ID o buscar-o-crear por
// NIT), descuenta stock por cada línea, calcula totales y reserva el
// consecutivo, todo dentro de una transacción. Sin líneas también factura:
// la consola permite emitir con el carrito vacío.
func (uc *FacturaUseCase) Crear(ctx context.Context, in dto.CrearFacturaRequest) (*dto.FacturaResponse, error) {
	if in.CabeceraID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	cabecera, err := uc.cabeceraRepo.GetByID(in.CabeceraID)
	if err != nil {
		return nil, err
	}
	if cabecera == nil {
		return nil, domain.ErrNoEncontrado
	}

	// Validar productos y completar precios fuera de la tx (solo lectura).
	productosPorID := make(map[string]*entity.Producto)
	for i := range in.Lineas {
		linea := &in.Lineas[i]
		if linea.ProductoID == "" || !linea.Cantidad.IsInteger() || !linea.Cantidad.IsPositive() {
			return nil, domain.ErrEntradaInvalida
		}
		producto, err := uc.productoRepo.GetByID(linea.ProductoID)
		if err != nil {
			return nil, err
		}
		if producto == nil {
			return nil, domain.ErrNoEncontrado
		}
		if linea.Dominio != "" && linea.Dominio != producto.Dominio {
			return nil, domain.ErrEntradaInvalida
		}
		if linea.PrecioUnitario.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		if linea.PrecioUnitario.IsZero() {
			linea.PrecioUnitario = producto.Precio
		}
		productosPorID[linea.ProductoID] = producto
	}

	now := time.Now()
	facturaID := uuid.New().String()
	var factura *entity.Factura
	var lineas []*entity.LineaFactura
	var clienteNombre string

	err = uc.txRunner.RunFacturacion(ctx, func(
		clienteRepo repository.ClienteRepository,
		productoRepo repository.ProductoRepository,
		facturaRepo repository.FacturaRepository,
	) error {
		cliente, err := uc.resolverCliente(clienteRepo, in, now)
		if err != nil {
			return err
		}
		clienteNombre = cliente.Nombre

		// Descuento de stock por línea; sin stock suficiente se revierte todo.
		for _, linea := range in.Lineas {
			if err := productoRepo.DescontarStock(linea.ProductoID, int(linea.Cantidad.IntPart())); err != nil {
				return err
			}
		}

		subtotal := decimal.Zero
		for _, linea := range in.Lineas {
			subtotal = subtotal.Add(linea.Cantidad.Mul(linea.PrecioUnitario))
		}
		descuento := in.Descuento
		if descuento.IsNegative() {
			return domain.ErrEntradaInvalida
		}
		if descuento.GreaterThan(subtotal) {
			descuento = subtotal
		}
		base := subtotal.Sub(descuento)
		iva := base.Mul(tasaIVA).Round(2)
		total := base.Add(iva)

		numero, err := facturaRepo.ProximoNumero()
		if err != nil {
			return fmt.Errorf("reservar consecutivo: %w", err)
		}

		factura = &entity.Factura{
			ID:            facturaID,
			NumeroFactura: fmt.Sprintf("F-%06d", numero),
			CabeceraID:    cabecera.ID,
			ClienteID:     cliente.ID,
			Subtotal:      subtotal,
			Descuento:     descuento,
			IVA:           iva,
			Total:         total,
			CreatedAt:     now,
		}
		if err := facturaRepo.Create(factura); err != nil {
			return err
		}
		for _, l := range in.Lineas {
			producto := productosPorID[l.ProductoID]
			linea := &entity.LineaFactura{
				ID:             uuid.New().String(),
				FacturaID:      factura.ID,
				ProductoID:     l.ProductoID,
				Dominio:        producto.Dominio,
				Descripcion:    producto.Nombre,
				Cantidad:       l.Cantidad,
				PrecioUnitario: l.PrecioUnitario,
				TotalLinea:     l.Cantidad.Mul(l.PrecioUnitario),
			}
			if err := facturaRepo.CreateLinea(linea); err != nil {
				return err
			}
			lineas = append(lineas, linea)
		}

		return clienteRepo.IncrementarCompras(cliente.ID)
	})
	if err != nil {
		return nil, err
	}

	return toFacturaResponse(factura, clienteNombre, lineas), nil
}

// resolverCliente aplica la semántica de la consola: referencia directa por ID,
// o buscar-o-crear por NIT. Un NIT desconocido solo crea cliente con la
// confirmación explícita (CrearCliente); sin ella la factura se aborta.
func (uc *FacturaUseCase) resolverCliente(clienteRepo repository.ClienteRepository, in dto.CrearFacturaRequest, now time.Time) (*entity.Cliente, error) {
	if in.ClienteID != "" {
		cliente, err := clienteRepo.GetByID(in.ClienteID)
		if err != nil {
			return nil, err
		}
		if cliente == nil {
			return nil, domain.ErrClienteNoExiste
		}
		return cliente, nil
	}
	if in.Cliente == nil || strings.TrimSpace(in.Cliente.Nit) == "" {
		return nil, domain.ErrEntradaInvalida
	}
	nit := strings.ToLower(strings.TrimSpace(in.Cliente.Nit))
	cliente, err := clienteRepo.GetByNit(nit)
	if err != nil {
		return nil, err
	}
	if cliente != nil {
		return cliente, nil
	}
	if !in.Cliente.CrearCliente {
		return nil, domain.ErrClienteNoExiste
	}
	cliente = &entity.Cliente{
		ID:        uuid.New().String(),
		Nombre:    strings.TrimSpace(in.Cliente.Nombre),
		Nit:       nit,
		Direccion: strings.TrimSpace(in.Cliente.Direccion),
		Ciudad:    strings.TrimSpace(in.Cliente.Ciudad),
		Telefono:  strings.TrimSpace(in.Cliente.Telefono),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := clienteRepo.Create(cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

// Listar devuelve las facturas con filtro substring case-insensitive sobre el
// número de factura.
func (uc *FacturaUseCase) Listar(buscar string) ([]*dto.FacturaResponse, error) {
	lista, err := uc.facturaRepo.List()
	if err != nil {
		return nil, err
	}
	termino := strings.ToLower(strings.TrimSpace(buscar))
	out := make([]*dto.FacturaResponse, 0, len(lista))
	for _, f := range lista {
		if termino != "" && !strings.Contains(strings.ToLower(f.NumeroFactura), termino) {
			continue
		}
		lineas, err := uc.facturaRepo.GetLineasByFacturaID(f.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, toFacturaResponse(f, uc.nombreCliente(f.ClienteID), lineas))
	}
	return out, nil
}

// GetByID obtiene una factura con su detalle completo. (nil, nil) si no existe.
func (uc *FacturaUseCase) GetByID(id string) (*dto.FacturaResponse, error) {
	factura, err := uc.facturaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if factura == nil {
		return nil, nil
	}
	lineas, err := uc.facturaRepo.GetLineasByFacturaID(id)
	if err != nil {
		return nil, err
	}
	return toFacturaResponse(factura, uc.nombreCliente(factura.ClienteID), lineas), nil
}

// Eliminar borra la factura y sus líneas. No repone stock: la anulación
// contable es un ajuste manual de inventario.
func (uc *FacturaUseCase) Eliminar(id string) error {
	factura, err := uc.facturaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if factura == nil {
		return domain.ErrNoEncontrado
	}
	return uc.facturaRepo.Delete(id)
}

func (uc *FacturaUseCase) nombreCliente(clienteID string) string {
	cliente, _ := uc.clienteRepo.GetByID(clienteID)
	if cliente == nil {
		return ""
	}
	return cliente.Nombre
}

func toFacturaResponse(f *entity.Factura, clienteNombre string, lineas []*entity.LineaFactura) *dto.FacturaResponse {
	resp := &dto.FacturaResponse{
		ID:            f.ID,
		NumeroFactura: f.NumeroFactura,
		CabeceraID:    f.CabeceraID,
		ClienteID:     f.ClienteID,
		ClienteNombre: clienteNombre,
		Lineas:        make([]dto.LineaFacturaResponse, 0, len(lineas)),
		Subtotal:      f.Subtotal,
		Descuento:     f.Descuento,
		IVA:           f.IVA,
		Total:         f.Total,
		Fecha:         f.CreatedAt.Format("2006-01-02"),
	}
	for _, l := range lineas {
		resp.Lineas = append(resp.Lineas, dto.LineaFacturaResponse{
			ID:             l.ID,
			ProductoID:     l.ProductoID,
			Dominio:        l.Dominio,
			Descripcion:    l.Descripcion,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
			TotalLinea:     l.TotalLinea,
		})
	}
	return resp
}
