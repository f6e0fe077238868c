package repository

import "github.com/getlatam/getla-api/internal/domain/entity"

// FacturaRepository define el puerto de persistencia para Factura y sus líneas.
type FacturaRepository interface {
	Create(factura *entity.Factura) error
	CreateLinea(linea *entity.LineaFactura) error
	GetByID(id string) (*entity.Factura, error)
	GetLineasByFacturaID(facturaID string) ([]*entity.LineaFactura, error)
	List() ([]*entity.Factura, error)
	Delete(id string) error
	// ProximoNumero reserva y devuelve el siguiente consecutivo de factura.
	ProximoNumero() (int64, error)
}
