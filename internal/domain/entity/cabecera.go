package entity

import "time"

// Cabecera representa una sucursal física a la que se atribuyen facturas.
type Cabecera struct {
	ID        string
	Local     string // nombre del local
	Nit       string
	Direccion string
	Telefono  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
