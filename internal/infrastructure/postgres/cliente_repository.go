package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/getlatam/getla-api/internal/domain"
	"github.com/getlatam/getla-api/internal/domain/entity"
	"github.com/getlatam/getla-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteCols = `id, nombre, nit, direccion, ciudad, telefono, compras, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (` + clienteCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Nit, c.Direccion, c.Ciudad, c.Telefono, c.Compras, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNitYaExiste
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM clientes WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get cliente")
}

// GetByNit obtiene un cliente por NIT normalizado.
func (r *ClienteRepo) GetByNit(nit string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM clientes WHERE nit = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, nit), "get cliente by nit")
}

// Update actualiza un cliente.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombre = $2, nit = $3, direccion = $4, ciudad = $5, telefono = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Nit, c.Direccion, c.Ciudad, c.Telefono, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNitYaExiste
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// IncrementarCompras suma 1 al contador de compras del cliente.
func (r *ClienteRepo) IncrementarCompras(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE clientes SET compras = compras + 1, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("incrementar compras: %w", err)
	}
	return nil
}

// List lista todos los clientes ordenados por nombre.
func (r *ClienteRepo) List() ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM clientes ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Nit, &c.Direccion, &c.Ciudad, &c.Telefono,
			&c.Compras, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un cliente por ID.
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) scanOne(row pgx.Row, op string) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(&c.ID, &c.Nombre, &c.Nit, &c.Direccion, &c.Ciudad, &c.Telefono,
		&c.Compras, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
