package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de producto. REPARACIÓN solo aplica al dominio repuestos.
const (
	EstadoOK         = "OK"
	EstadoDefectuoso = "DEFECTUOSO"
	EstadoAgotado    = "AGOTADO"
	EstadoPendiente  = "PENDIENTE"
	EstadoReparacion = "REPARACIÓN"
)

// Producto representa un ítem de stock dentro de una categoría.
// Talla solo se usa en dotación.
type Producto struct {
	ID          string
	CategoriaID string
	Dominio     string
	Referencia  string
	Nombre      string
	Descripcion string
	Talla       string
	Precio      decimal.Decimal
	Stock       int
	Imagen      string // URL
	Estado      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EstadoValido indica si el estado es admisible para el dominio dado.
func EstadoValido(dominio, estado string) bool {
	switch estado {
	case EstadoOK, EstadoDefectuoso, EstadoAgotado, EstadoPendiente:
		return true
	case EstadoReparacion:
		return dominio == DominioRepuestos
	}
	return false
}
