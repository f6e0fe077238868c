package sesion_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getlatam/getla-api/internal/application/sesion"
	"github.com/getlatam/getla-api/internal/domain/entity"
	"github.com/getlatam/getla-api/internal/domain/rol"
)

// revalidadorFake simula el puerto "quién soy".
type revalidadorFake struct {
	usuario  *entity.Usuario
	err      error
	llamadas int
}

func (r *revalidadorFake) QuienSoy(_ context.Context, _ string) (*entity.Usuario, error) {
	r.llamadas++
	return r.usuario, r.err
}

func perfilAdmin() entity.Usuario {
	return entity.Usuario{ID: "u-1", Nombre: "Ana", Rol: "admin", Email: "ana@getla.cl"}
}

// Sin token no se renderiza nada protegido: siempre redirección al login.
func TestGate_SinTokenSiempreRedirige(t *testing.T) {
	store := sesion.NewMemoriaStore()
	gate := sesion.NewGate(store, &revalidadorFake{})

	assert.Equal(t, sesion.EstadoRedirigiendo, gate.Montar("").Estado)
	assert.Equal(t, sesion.EstadoRedirigiendo, gate.Evaluar(context.Background(), "").Estado)
}

// Token sin sesión registrada equivale a token ausente.
func TestGate_TokenNoRegistradoRedirige(t *testing.T) {
	store := sesion.NewMemoriaStore()
	gate := sesion.NewGate(store, &revalidadorFake{usuario: ptr(perfilAdmin())})

	d := gate.Evaluar(context.Background(), "token-fantasma")
	assert.Equal(t, sesion.EstadoRedirigiendo, d.Estado)
}

// Montaje optimista: con sesión cacheada autoriza sin tocar el revalidador.
func TestGate_MontarAutorizaConPerfilCacheadoSinRed(t *testing.T) {
	store := sesion.NewMemoriaStore()
	rev := &revalidadorFake{}
	gate := sesion.NewGate(store, rev)
	store.Guardar("tok", perfilAdmin())

	d := gate.Montar("tok")
	assert.Equal(t, sesion.EstadoAutorizada, d.Estado)
	assert.Equal(t, "Ana", d.Perfil.Nombre)
	assert.Zero(t, rev.llamadas, "el montaje no debe ir a la red")
}

// Perfil cacheado válido pero revalidación fallida: la sesión se limpia y
// nada protegido queda accesible después de observar la falla.
func TestGate_RevalidacionFallidaLimpiaSesionYRedirige(t *testing.T) {
	store := sesion.NewMemoriaStore()
	gate := sesion.NewGate(store, &revalidadorFake{err: errors.New("token vencido")})
	store.Guardar("tok", perfilAdmin())

	d := gate.Evaluar(context.Background(), "tok")
	assert.Equal(t, sesion.EstadoRedirigiendo, d.Estado)

	_, ok := store.Obtener("tok")
	assert.False(t, ok, "la sesión debe quedar destruida")

	// Una evaluación posterior tampoco autoriza.
	assert.Equal(t, sesion.EstadoRedirigiendo, gate.Evaluar(context.Background(), "tok").Estado)
}

// Usuario eliminado en el servidor ((nil, nil) del revalidador) también fuerza logout.
func TestGate_UsuarioEliminadoRedirige(t *testing.T) {
	store := sesion.NewMemoriaStore()
	gate := sesion.NewGate(store, &revalidadorFake{usuario: nil, err: nil})
	store.Guardar("tok", perfilAdmin())

	d := gate.Evaluar(context.Background(), "tok")
	assert.Equal(t, sesion.EstadoRedirigiendo, d.Estado)
}

// Revalidación exitosa reemplaza el snapshot: un cambio de rol en el servidor
// se refleja en el menú sin re-login.
func TestGate_RevalidacionRefrescaPerfilYMenu(t *testing.T) {
	store := sesion.NewMemoriaStore()
	degradado := perfilAdmin()
	degradado.Rol = "adminrep"
	gate := sesion.NewGate(store, &revalidadorFake{usuario: &degradado})
	store.Guardar("tok", perfilAdmin())

	d := gate.Evaluar(context.Background(), "tok")
	require.Equal(t, sesion.EstadoAutorizada, d.Estado)
	assert.Equal(t, "adminrep", d.Perfil.Rol)
	assert.Equal(t, "/repuestos", d.Aterrizaje)

	habilitados := []string{}
	for _, e := range d.Menu {
		if e.Habilitado {
			habilitados = append(habilitados, e.Modulo)
		}
	}
	assert.Equal(t, []string{rol.ModuloRepuestos}, habilitados)

	ses, ok := store.Obtener("tok")
	require.True(t, ok)
	assert.Equal(t, "adminrep", ses.Perfil.Rol, "el store debe guardar el perfil fresco")
}

func TestStore_GuardarObtenerLimpiar(t *testing.T) {
	store := sesion.NewMemoriaStore()

	_, ok := store.Obtener("tok")
	assert.False(t, ok)

	store.Guardar("tok", perfilAdmin())
	ses, ok := store.Obtener("tok")
	require.True(t, ok)
	assert.Equal(t, "u-1", ses.Perfil.ID)

	store.Limpiar("tok")
	_, ok = store.Obtener("tok")
	assert.False(t, ok)

	// limpiar dos veces es inofensivo
	store.Limpiar("tok")
}

func ptr(u entity.Usuario) *entity.Usuario { return &u }
