package repository

import "github.com/getlatam/getla-api/internal/domain/entity"

// CategoriaRepository define el puerto de persistencia para Categoria.
// Todas las operaciones están acotadas por dominio (repuestos, dotacion, limpieza).
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	GetByID(dominio, id string) (*entity.Categoria, error)
	Update(categoria *entity.Categoria) error
	ListByDominio(dominio string) ([]*entity.Categoria, error)
	// Delete elimina la categoría y en cascada sus productos.
	Delete(dominio, id string) error
}
