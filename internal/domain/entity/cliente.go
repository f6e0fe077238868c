package entity

import "time"

// Cliente representa un cliente facturable, identificado por NIT/RUT.
// Compras cuenta las facturas emitidas a su nombre.
type Cliente struct {
	ID        string
	Nombre    string
	Nit       string // único; llave de búsqueda y de buscar-o-crear en facturación
	Direccion string
	Ciudad    string
	Telefono  string
	Compras   int
	CreatedAt time.Time
	UpdatedAt time.Time
}
