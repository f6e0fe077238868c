package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/getlatam/getla-api/internal/domain/entity"
	"github.com/getlatam/getla-api/internal/domain/repository"
)

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// FacturaRepo implementación de FacturaRepository (usable con pool o tx).
type FacturaRepo struct {
	q Querier
}

// NewFacturaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFacturaRepository(q Querier) *FacturaRepo {
	return &FacturaRepo{q: q}
}

const facturaCols = `id, numero_factura, cabecera_id, cliente_id, subtotal, descuento, iva, total, created_at`
const lineaCols = `id, factura_id, producto_id, dominio, descripcion, cantidad, precio_unitario, total_linea`

// Create persiste la cabecera de la factura.
func (r *FacturaRepo) Create(f *entity.Factura) error {
	query := `
		INSERT INTO facturas (` + facturaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.NumeroFactura, f.CabeceraID, f.ClienteID,
		f.Subtotal, f.Descuento, f.IVA, f.Total, f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}

// CreateLinea persiste una línea de detalle.
func (r *FacturaRepo) CreateLinea(l *entity.LineaFactura) error {
	query := `
		INSERT INTO factura_lineas (` + lineaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.FacturaID, l.ProductoID, l.Dominio, l.Descripcion,
		l.Cantidad, l.PrecioUnitario, l.TotalLinea,
	)
	if err != nil {
		return fmt.Errorf("insert linea factura: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *FacturaRepo) GetByID(id string) (*entity.Factura, error) {
	query := `SELECT ` + facturaCols + ` FROM facturas WHERE id = $1`
	var f entity.Factura
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.NumeroFactura, &f.CabeceraID, &f.ClienteID,
		&f.Subtotal, &f.Descuento, &f.IVA, &f.Total, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	return &f, nil
}

// GetLineasByFacturaID obtiene las líneas de la factura. El orden por id es
// estable entre lecturas, no de inserción.
func (r *FacturaRepo) GetLineasByFacturaID(facturaID string) ([]*entity.LineaFactura, error) {
	query := `SELECT ` + lineaCols + ` FROM factura_lineas WHERE factura_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, facturaID)
	if err != nil {
		return nil, fmt.Errorf("list lineas factura: %w", err)
	}
	defer rows.Close()
	var list []*entity.LineaFactura
	for rows.Next() {
		var l entity.LineaFactura
		if err := rows.Scan(&l.ID, &l.FacturaID, &l.ProductoID, &l.Dominio, &l.Descripcion,
			&l.Cantidad, &l.PrecioUnitario, &l.TotalLinea); err != nil {
			return nil, fmt.Errorf("scan linea factura: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// List lista todas las facturas, las más recientes primero.
func (r *FacturaRepo) List() ([]*entity.Factura, error) {
	query := `SELECT ` + facturaCols + ` FROM facturas ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Factura
	for rows.Next() {
		var f entity.Factura
		if err := rows.Scan(&f.ID, &f.NumeroFactura, &f.CabeceraID, &f.ClienteID,
			&f.Subtotal, &f.Descuento, &f.IVA, &f.Total, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete elimina la factura; las líneas caen por la FK ON DELETE CASCADE.
func (r *FacturaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM facturas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete factura: %w", err)
	}
	return nil
}

// ProximoNumero reserva el siguiente consecutivo desde la secuencia de facturas.
func (r *FacturaRepo) ProximoNumero() (int64, error) {
	var numero int64
	err := r.q.QueryRow(context.Background(), `SELECT nextval('facturas_numero_seq')`).Scan(&numero)
	if err != nil {
		return 0, fmt.Errorf("proximo numero de factura: %w", err)
	}
	return numero, nil
}
