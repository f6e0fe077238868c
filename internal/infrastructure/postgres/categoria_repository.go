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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación de CategoriaRepository (usable con pool o tx).
// Todas las consultas filtran por dominio: las tres vistas de inventario
// comparten tabla.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

const categoriaCols = `id, dominio, nombre, imagen, created_at, updated_at`

// Create persiste una nueva categoría.
func (r *CategoriaRepo) Create(c *entity.Categoria) error {
	query := `
		INSERT INTO categorias (` + categoriaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Dominio, c.Nombre, c.Imagen, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría del dominio por ID.
func (r *CategoriaRepo) GetByID(dominio, id string) (*entity.Categoria, error) {
	query := `SELECT ` + categoriaCols + ` FROM categorias WHERE dominio = $1 AND id = $2`
	var c entity.Categoria
	err := r.q.QueryRow(context.Background(), query, dominio, id).Scan(
		&c.ID, &c.Dominio, &c.Nombre, &c.Imagen, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// Update actualiza una categoría.
func (r *CategoriaRepo) Update(c *entity.Categoria) error {
	query := `
		UPDATE categorias SET nombre = $3, imagen = $4, updated_at = $5
		WHERE dominio = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		c.Dominio, c.ID, c.Nombre, c.Imagen, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// ListByDominio lista las categorías del dominio ordenadas por nombre.
func (r *CategoriaRepo) ListByDominio(dominio string) ([]*entity.Categoria, error) {
	query := `SELECT ` + categoriaCols + ` FROM categorias WHERE dominio = $1 ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query, dominio)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Dominio, &c.Nombre, &c.Imagen, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina la categoría del dominio; los productos caen por la FK ON DELETE CASCADE.
func (r *CategoriaRepo) Delete(dominio, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM categorias WHERE dominio = $1 AND id = $2`, dominio, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}
