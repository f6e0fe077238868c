package repository

import "github.com/getlatam/getla-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	ListByDominio(dominio string) ([]*entity.Producto, error)
	ListByCategoria(dominio, categoriaID string) ([]*entity.Producto, error)
	Delete(id string) error
	// DescontarStock resta cantidad del stock; retorna ErrStockInsuficiente si
	// el stock quedaría negativo.
	DescontarStock(id string, cantidad int) error
}
