package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado        = errors.New("recurso no encontrado")
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
	ErrEmailYaExiste       = errors.New("el email ya está registrado")
	ErrNitYaExiste         = errors.New("el nit ya está registrado")
	ErrEntradaInvalida     = errors.New("entrada inválida")
	ErrDuplicado           = errors.New("recurso duplicado")
	ErrNoAutorizado        = errors.New("no autorizado")
	ErrProhibido           = errors.New("acceso denegado")
	ErrStockInsuficiente   = errors.New("stock insuficiente")
	ErrClienteNoExiste     = errors.New("el cliente no existe")
	ErrTokenReseteo        = errors.New("token de reseteo inválido o vencido")
)
