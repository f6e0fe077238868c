package dto

import "github.com/getlatam/getla-api/internal/domain/rol"

// SesionResponse es la evaluación de la puerta de navegación para el sidebar:
// estado de la sesión, perfil vigente y menú completo con banderas de acceso.
type SesionResponse struct {
	Estado     string          `json:"estado"` // autorizada | redirigiendo
	Usuario    UsuarioResponse `json:"usuario"`
	Menu       []rol.Entrada   `json:"menu"`
	Aterrizaje string          `json:"aterrizaje"`
}
