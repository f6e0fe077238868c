package repository

import "github.com/getlatam/getla-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	// GetByNit busca por NIT normalizado (lower + trim); llave del
	// buscar-o-crear de facturación.
	GetByNit(nit string) (*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	// IncrementarCompras suma 1 al contador de compras del cliente.
	IncrementarCompras(id string) error
	List() ([]*entity.Cliente, error)
	Delete(id string) error
}
