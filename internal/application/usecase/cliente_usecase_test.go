package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getlatam/getla-api/internal/application/dto"
	"github.com/getlatam/getla-api/internal/domain"
	"github.com/getlatam/getla-api/internal/domain/entity"
)

// clienteRepoUCFake implementa repository.ClienteRepository en memoria.
type clienteRepoUCFake struct {
	porID map[string]*entity.Cliente
	orden []string
}

func newClienteRepoUCFake() *clienteRepoUCFake {
	return &clienteRepoUCFake{porID: map[string]*entity.Cliente{}}
}

func (f *clienteRepoUCFake) Create(c *entity.Cliente) error {
	copia := *c
	f.porID[c.ID] = &copia
	f.orden = append(f.orden, c.ID)
	return nil
}

func (f *clienteRepoUCFake) GetByID(id string) (*entity.Cliente, error) {
	c, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (f *clienteRepoUCFake) GetByNit(nit string) (*entity.Cliente, error) {
	for _, c := range f.porID {
		if c.Nit == nit {
			copia := *c
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *clienteRepoUCFake) Update(c *entity.Cliente) error {
	copia := *c
	f.porID[c.ID] = &copia
	return nil
}

func (f *clienteRepoUCFake) IncrementarCompras(id string) error {
	if c, ok := f.porID[id]; ok {
		c.Compras++
	}
	return nil
}

func (f *clienteRepoUCFake) List() ([]*entity.Cliente, error) {
	out := make([]*entity.Cliente, 0, len(f.orden))
	for _, id := range f.orden {
		if c, ok := f.porID[id]; ok {
			copia := *c
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *clienteRepoUCFake) Delete(id string) error {
	delete(f.porID, id)
	return nil
}

func crearClienteDePrueba(t *testing.T, uc *ClienteUseCase, nombre, nit string) *dto.ClienteResponse {
	t.Helper()
	resp, err := uc.Crear(dto.CrearClienteRequest{
		Nombre: nombre, Nit: nit, Direccion: "Calle 1", Ciudad: "Santiago", Telefono: "221234567",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	return resp
}

// Caso 1: el NIT se normaliza al crear y la unicidad se evalúa sobre la forma
// normalizada (guardia servidor del doble submit).
func TestClienteCrear_NitDuplicadoNormalizado(t *testing.T) {
	repo := newClienteRepoUCFake()
	uc := NewClienteUseCase(repo)

	pedro := crearClienteDePrueba(t, uc, "Pedro", "  11.222.333-K ")
	assert.Equal(t, "11.222.333-k", pedro.Nit, "el NIT queda en su forma canónica")

	_, err := uc.Crear(dto.CrearClienteRequest{
		Nombre: "Otro Pedro", Nit: "11.222.333-k", Direccion: "Calle 2", Ciudad: "Santiago", Telefono: "229876543",
	})
	assert.ErrorIs(t, err, domain.ErrNitYaExiste)

	_, err = uc.Crear(dto.CrearClienteRequest{
		Nombre: "Tercer Pedro", Nit: "11.222.333-K", Direccion: "Calle 3", Ciudad: "Santiago", Telefono: "220000000",
	})
	assert.ErrorIs(t, err, domain.ErrNitYaExiste, "mayúsculas y espacios no evaden la unicidad")

	assert.Len(t, repo.porID, 1, "el reintento no duplica el registro")
}

// Caso 2: cambiar el NIT a uno tomado por otro cliente falla; al propio no.
func TestClienteActualizar_NitTomado(t *testing.T) {
	uc := NewClienteUseCase(newClienteRepoUCFake())
	pedro := crearClienteDePrueba(t, uc, "Pedro", "1-9")
	crearClienteDePrueba(t, uc, "Ana", "2-7")

	_, err := uc.Actualizar(pedro.ID, dto.ActualizarClienteRequest{Nit: "2-7"})
	assert.ErrorIs(t, err, domain.ErrNitYaExiste)

	resp, err := uc.Actualizar(pedro.ID, dto.ActualizarClienteRequest{Nit: " 1-9 ", Nombre: "Pedro Soto"})
	require.NoError(t, err)
	assert.Equal(t, "1-9", resp.Nit, "re-entregar el propio NIT no es conflicto")
	assert.Equal(t, "Pedro Soto", resp.Nombre)
}

// Caso 3: GetByNit busca por la forma normalizada; desconocido es (nil, nil).
func TestClienteGetByNit_Normalizado(t *testing.T) {
	uc := NewClienteUseCase(newClienteRepoUCFake())
	crearClienteDePrueba(t, uc, "Pedro", "11.222.333-k")

	resp, err := uc.GetByNit("  11.222.333-K ")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Pedro", resp.Nombre)

	resp, err = uc.GetByNit("99.999.999-9")
	require.NoError(t, err)
	assert.Nil(t, resp)
}

// Caso 4: el filtro ?buscar= opera sobre el NIT y preserva el orden.
func TestClienteListar_FiltroPorNit(t *testing.T) {
	uc := NewClienteUseCase(newClienteRepoUCFake())
	crearClienteDePrueba(t, uc, "Pedro", "11.222.333-4")
	crearClienteDePrueba(t, uc, "Ana", "9.876.543-2")
	crearClienteDePrueba(t, uc, "Luis", "11.900.000-1")

	lista, err := uc.Listar("11.")
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.Equal(t, "Pedro", lista[0].Nombre)
	assert.Equal(t, "Luis", lista[1].Nombre)

	lista, err = uc.Listar("")
	require.NoError(t, err)
	assert.Len(t, lista, 3, "sin término devuelve el listado completo")
}

// Caso 5: eliminar un cliente inexistente.
func TestClienteEliminar_Inexistente(t *testing.T) {
	uc := NewClienteUseCase(newClienteRepoUCFake())
	err := uc.Eliminar("no-existe")
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}
