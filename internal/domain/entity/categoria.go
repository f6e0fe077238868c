package entity

import "time"

// Dominios de inventario. Cada dominio tiene sus propias categorías y productos.
const (
	DominioRepuestos = "repuestos"
	DominioDotacion  = "dotacion"
	DominioLimpieza  = "limpieza"
)

// DominioValido indica si el dominio pertenece al conjunto cerrado.
func DominioValido(d string) bool {
	switch d {
	case DominioRepuestos, DominioDotacion, DominioLimpieza:
		return true
	}
	return false
}

// Categoria agrupa productos dentro de un dominio de inventario.
type Categoria struct {
	ID        string
	Dominio   string
	Nombre    string
	Imagen    string // URL
	CreatedAt time.Time
	UpdatedAt time.Time
}
