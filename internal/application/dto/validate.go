package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validar ejecuta las etiquetas `validate` declaradas en el request. Retorna
// el error del validador con los campos que no cumplen.
func Validar(s any) error {
	return validate.Struct(s)
}
