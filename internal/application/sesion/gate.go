// Package sesion implementa el núcleo de autorización de la consola GETLA:
// el Store de sesiones y la puerta de navegación (Gate).
//
// La Gate es una máquina de tres estados:
//
//	NoVerificada ──token ausente──────────────▶ Redirigiendo (al login)
//	NoVerificada ──sesión en el store─────────▶ Autorizada (perfil cacheado)
//	Autorizada ──revalidación falla───────────▶ Redirigiendo (store limpiado)
//	Autorizada ──revalidación ok──────────────▶ Autorizada (perfil fresco)
//
// El patrón optimista-luego-verificar evita el parpadeo de carga en cada
// navegación y a la vez cierra la ventana en la que un token revocado seguiría
// dando acceso a pantallas protegidas.
package sesion

import (
	"context"

	"github.com/getlatam/getla-api/internal/domain/entity"
	"github.com/getlatam/getla-api/internal/domain/rol"
)

// Estados de la puerta de navegación.
type Estado string

const (
	EstadoNoVerificada Estado = "no_verificada"
	EstadoAutorizada   Estado = "autorizada"
	EstadoRedirigiendo Estado = "redirigiendo"
)

// Revalidador es el puerto "quién soy": devuelve el perfil fresco del usuario.
// (nil, nil) significa que el usuario ya no existe.
type Revalidador interface {
	QuienSoy(ctx context.Context, usuarioID string) (*entity.Usuario, error)
}

// Decision es el resultado de evaluar la puerta para un token.
type Decision struct {
	Estado     Estado
	Perfil     entity.Usuario
	Menu       []rol.Entrada
	Aterrizaje string
}

// Gate evalúa si una pantalla protegida puede renderizarse.
type Gate struct {
	store       Store
	revalidador Revalidador
}

// NewGate construye la puerta con sus dependencias inyectadas.
func NewGate(store Store, revalidador Revalidador) *Gate {
	return &Gate{store: store, revalidador: revalidador}
}

// Montar es la fase optimista: decide solo con el store, sin red.
// Token ausente o sin sesión registrada → Redirigiendo.
func (g *Gate) Montar(token string) Decision {
	if token == "" {
		return Decision{Estado: EstadoRedirigiendo}
	}
	ses, ok := g.store.Obtener(token)
	if !ok {
		return Decision{Estado: EstadoRedirigiendo}
	}
	return g.autorizada(ses.Perfil)
}

// Revalidar es la fase de verificación: consulta el perfil fresco y
// reemplaza el snapshot cacheado. Cualquier error (incluido usuario
// eliminado) limpia la sesión y fuerza la redirección al login.
// Un cambio de rol en el servidor se refleja sin exigir re-login.
func (g *Gate) Revalidar(ctx context.Context, token string) Decision {
	ses, ok := g.store.Obtener(token)
	if !ok {
		return Decision{Estado: EstadoRedirigiendo}
	}
	fresco, err := g.revalidador.QuienSoy(ctx, ses.Perfil.ID)
	if err != nil || fresco == nil {
		g.store.Limpiar(token)
		return Decision{Estado: EstadoRedirigiendo}
	}
	g.store.Guardar(token, *fresco)
	return g.autorizada(*fresco)
}

// Evaluar compone las dos fases: montaje optimista y verificación.
// Es la evaluación completa que usa la capa HTTP.
func (g *Gate) Evaluar(ctx context.Context, token string) Decision {
	montaje := g.Montar(token)
	if montaje.Estado != EstadoAutorizada {
		return montaje
	}
	return g.Revalidar(ctx, token)
}

func (g *Gate) autorizada(perfil entity.Usuario) Decision {
	return Decision{
		Estado:     EstadoAutorizada,
		Perfil:     perfil,
		Menu:       rol.Menu(perfil.Rol),
		Aterrizaje: rol.Aterrizaje(perfil.Rol),
	}
}
