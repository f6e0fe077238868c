package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/getlatam/getla-api/internal/domain/entity"
	"github.com/getlatam/getla-api/internal/domain/repository"
)

var _ repository.CabeceraRepository = (*CabeceraRepo)(nil)

// CabeceraRepo implementación de CabeceraRepository (usable con pool o tx).
type CabeceraRepo struct {
	q Querier
}

// NewCabeceraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCabeceraRepository(q Querier) *CabeceraRepo {
	return &CabeceraRepo{q: q}
}

const cabeceraCols = `id, local, nit, direccion, telefono, email, created_at, updated_at`

// Create persiste una nueva sucursal.
func (r *CabeceraRepo) Create(c *entity.Cabecera) error {
	query := `
		INSERT INTO cabeceras (` + cabeceraCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Local, c.Nit, c.Direccion, c.Telefono, c.Email, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cabecera: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal por ID.
func (r *CabeceraRepo) GetByID(id string) (*entity.Cabecera, error) {
	query := `SELECT ` + cabeceraCols + ` FROM cabeceras WHERE id = $1`
	var c entity.Cabecera
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Local, &c.Nit, &c.Direccion, &c.Telefono, &c.Email, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cabecera: %w", err)
	}
	return &c, nil
}

// Update actualiza una sucursal.
func (r *CabeceraRepo) Update(c *entity.Cabecera) error {
	query := `
		UPDATE cabeceras SET local = $2, nit = $3, direccion = $4, telefono = $5, email = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Local, c.Nit, c.Direccion, c.Telefono, c.Email, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cabecera: %w", err)
	}
	return nil
}

// List lista todas las sucursales ordenadas por nombre del local.
func (r *CabeceraRepo) List() ([]*entity.Cabecera, error) {
	query := `SELECT ` + cabeceraCols + ` FROM cabeceras ORDER BY local`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list cabeceras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cabecera
	for rows.Next() {
		var c entity.Cabecera
		if err := rows.Scan(&c.ID, &c.Local, &c.Nit, &c.Direccion, &c.Telefono, &c.Email,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cabecera: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una sucursal por ID.
func (r *CabeceraRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cabeceras WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cabecera: %w", err)
	}
	return nil
}
