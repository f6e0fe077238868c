package dto

// CrearCabeceraRequest entrada para crear una sucursal.
type CrearCabeceraRequest struct {
	Local     string `json:"local" validate:"required,min=1,max=200"`
	Nit       string `json:"nit" validate:"required"`
	Direccion string `json:"direccion" validate:"required"`
	Telefono  string `json:"telefono" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// ActualizarCabeceraRequest entrada para actualizar una sucursal.
type ActualizarCabeceraRequest struct {
	Local     string `json:"local"`
	Nit       string `json:"nit"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
}

// CabeceraResponse salida de una sucursal.
type CabeceraResponse struct {
	ID        string `json:"id"`
	Local     string `json:"local"`
	Nit       string `json:"nit"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
}

// CabecerasListResponse listado envuelto bajo su clave de entidad.
type CabecerasListResponse struct {
	Cabeceras []*CabeceraResponse `json:"cabeceras"`
}
