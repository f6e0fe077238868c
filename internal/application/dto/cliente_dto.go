package dto

// CrearClienteRequest entrada para crear un cliente.
type CrearClienteRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	Nit       string `json:"nit" validate:"required,min=3,max=30"`
	Direccion string `json:"direccion" validate:"required"`
	Ciudad    string `json:"ciudad" validate:"required"`
	Telefono  string `json:"telefono" validate:"required"`
}

// ActualizarClienteRequest entrada para actualizar un cliente.
type ActualizarClienteRequest struct {
	Nombre    string `json:"nombre"`
	Nit       string `json:"nit"`
	Direccion string `json:"direccion"`
	Ciudad    string `json:"ciudad"`
	Telefono  string `json:"telefono"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Nit       string `json:"nit"`
	Direccion string `json:"direccion"`
	Ciudad    string `json:"ciudad"`
	Telefono  string `json:"telefono"`
	Compras   int    `json:"compras"`
}

// ClientesListResponse listado envuelto bajo su clave de entidad.
type ClientesListResponse struct {
	Clientes []*ClienteResponse `json:"clientes"`
}
