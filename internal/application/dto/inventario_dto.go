package dto

import "github.com/shopspring/decimal"

// CrearCategoriaRequest entrada para crear una categoría de inventario.
type CrearCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=200"`
	Imagen string `json:"imagen" validate:"required,url"`
}

// ActualizarCategoriaRequest entrada para actualizar una categoría.
type ActualizarCategoriaRequest struct {
	Nombre string `json:"nombre"`
	Imagen string `json:"imagen"`
}

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID      string `json:"id"`
	Dominio string `json:"dominio"`
	Nombre  string `json:"nombre"`
	Imagen  string `json:"imagen"`
}

// CategoriasListResponse listado envuelto bajo su clave de entidad.
type CategoriasListResponse struct {
	Categorias []*CategoriaResponse `json:"categorias"`
}

// CrearProductoRequest entrada para crear un producto de inventario.
// Talla solo aplica a dotación; Estado se valida contra el dominio.
type CrearProductoRequest struct {
	CategoriaID string          `json:"categoria" validate:"required"`
	Referencia  string          `json:"referencia" validate:"required"`
	Nombre      string          `json:"nombre" validate:"required"`
	Descripcion string          `json:"descripcion"`
	Talla       string          `json:"talla"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	Imagen      string          `json:"imagen" validate:"required,url"`
	Estado      string          `json:"estado"`
}

// ActualizarProductoRequest entrada para actualizar un producto.
type ActualizarProductoRequest struct {
	Referencia  string           `json:"referencia"`
	Nombre      string           `json:"nombre"`
	Descripcion string           `json:"descripcion"`
	Talla       string           `json:"talla"`
	Precio      *decimal.Decimal `json:"precio"`
	Stock       *int             `json:"stock"`
	Imagen      string           `json:"imagen"`
	Estado      string           `json:"estado"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID          string          `json:"id"`
	CategoriaID string          `json:"categoria"`
	Dominio     string          `json:"dominio"`
	Referencia  string          `json:"referencia"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	Talla       string          `json:"talla,omitempty"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	Imagen      string          `json:"imagen"`
	Estado      string          `json:"estado"`
}

// ProductosListResponse listado envuelto bajo su clave de entidad.
type ProductosListResponse struct {
	Productos []*ProductoResponse `json:"productos"`
}
