package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/getlatam/getla-api/internal/application/facturacion"
	"github.com/getlatam/getla-api/internal/domain/repository"
)

var _ facturacion.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunFacturacion inicia una transacción, ejecuta fn con repos atados a la tx y
// hace Commit o Rollback.
func (r *TxRunner) RunFacturacion(ctx context.Context, fn func(
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	facturaRepo repository.FacturaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	clienteRepo := NewClienteRepository(tx)
	productoRepo := NewProductoRepository(tx)
	facturaRepo := NewFacturaRepository(tx)

	if err := fn(clienteRepo, productoRepo, facturaRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
