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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoCols = `id, categoria_id, dominio, referencia, nombre, descripcion, talla, precio, stock, imagen, estado, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.CategoriaID, p.Dominio, p.Referencia, p.Nombre, p.Descripcion, p.Talla,
		p.Precio, p.Stock, p.Imagen, p.Estado, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE id = $1`
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CategoriaID, &p.Dominio, &p.Referencia, &p.Nombre, &p.Descripcion, &p.Talla,
		&p.Precio, &p.Stock, &p.Imagen, &p.Estado, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos SET referencia = $2, nombre = $3, descripcion = $4, talla = $5,
			precio = $6, stock = $7, imagen = $8, estado = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Referencia, p.Nombre, p.Descripcion, p.Talla,
		p.Precio, p.Stock, p.Imagen, p.Estado, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// ListByDominio lista los productos del dominio ordenados por referencia.
func (r *ProductoRepo) ListByDominio(dominio string) ([]*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE dominio = $1 ORDER BY referencia`
	return r.list(query, dominio)
}

// ListByCategoria lista los productos de una categoría del dominio.
func (r *ProductoRepo) ListByCategoria(dominio, categoriaID string) ([]*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE dominio = $1 AND categoria_id = $2 ORDER BY referencia`
	return r.list(query, dominio, categoriaID)
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

// DescontarStock resta cantidad de forma atómica; la condición stock >= cantidad
// evita stock negativo bajo concurrencia.
func (r *ProductoRepo) DescontarStock(id string, cantidad int) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = stock - $2, updated_at = now() WHERE id = $1 AND stock >= $2`,
		id, cantidad)
	if err != nil {
		return fmt.Errorf("descontar stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// O el producto no existe o no alcanza el stock; distinguir para el caller.
		existe, err := r.GetByID(id)
		if err != nil {
			return err
		}
		if existe == nil {
			return domain.ErrNoEncontrado
		}
		return domain.ErrStockInsuficiente
	}
	return nil
}

func (r *ProductoRepo) list(query string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.CategoriaID, &p.Dominio, &p.Referencia, &p.Nombre, &p.Descripcion,
			&p.Talla, &p.Precio, &p.Stock, &p.Imagen, &p.Estado, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
