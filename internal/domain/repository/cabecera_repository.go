package repository

import "github.com/getlatam/getla-api/internal/domain/entity"

// CabeceraRepository define el puerto de persistencia para Cabecera (sucursal).
type CabeceraRepository interface {
	Create(cabecera *entity.Cabecera) error
	GetByID(id string) (*entity.Cabecera, error)
	Update(cabecera *entity.Cabecera) error
	List() ([]*entity.Cabecera, error)
	Delete(id string) error
}
