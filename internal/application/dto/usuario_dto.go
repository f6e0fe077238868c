package dto

import "time"

// CrearUsuarioRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CrearUsuarioRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=200"`
	Cargo    string `json:"cargo" validate:"omitempty,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Rol      string `json:"rol" validate:"required"`
	Imagen   string `json:"imagen" validate:"omitempty,url"`
	Password string `json:"password" validate:"required,min=5"`
}

// ActualizarUsuarioRequest entrada para actualizar; password vacío conserva el actual.
type ActualizarUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Cargo    string `json:"cargo"`
	Email    string `json:"email" validate:"omitempty,email"`
	Rol      string `json:"rol"`
	Imagen   string `json:"imagen" validate:"omitempty,url"`
	Password string `json:"password" validate:"omitempty,min=5"`
}

// UsuarioResponse salida de un usuario (sin password).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Cargo     string    `json:"cargo,omitempty"`
	Email     string    `json:"email"`
	Rol       string    `json:"rol"`
	Imagen    string    `json:"imagen,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UsuariosListResponse listado envuelto bajo su clave de entidad.
type UsuariosListResponse struct {
	Usuarios []*UsuarioResponse `json:"usuarios"`
}
