package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/getlatam/getla-api/internal/application/dto"
	"github.com/getlatam/getla-api/internal/domain"
	"github.com/getlatam/getla-api/internal/domain/entity"
	"github.com/getlatam/getla-api/internal/domain/repository"
)

// ClienteUseCase aplica reglas de negocio para clientes facturables.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// NormalizarNit es la forma canónica del NIT para búsqueda y unicidad.
func NormalizarNit(nit string) string {
	return strings.ToLower(strings.TrimSpace(nit))
}

// Crear registra un cliente. ErrNitYaExiste si el NIT normalizado está tomado.
func (uc *ClienteUseCase) Crear(in dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	nit := NormalizarNit(in.Nit)
	existente, _ := uc.repo.GetByNit(nit)
	if existente != nil {
		return nil, domain.ErrNitYaExiste
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:        uuid.New().String(),
		Nombre:    strings.TrimSpace(in.Nombre),
		Nit:       nit,
		Direccion: strings.TrimSpace(in.Direccion),
		Ciudad:    strings.TrimSpace(in.Ciudad),
		Telefono:  strings.TrimSpace(in.Telefono),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Listar devuelve los clientes, con filtro substring case-insensitive sobre el
// NIT. El filtro preserva el orden del listado y vacío lo restaura completo.
func (uc *ClienteUseCase) Listar(buscar string) ([]*dto.ClienteResponse, error) {
	lista, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	termino := strings.ToLower(strings.TrimSpace(buscar))
	out := make([]*dto.ClienteResponse, 0, len(lista))
	for _, c := range lista {
		if termino != "" && !strings.Contains(strings.ToLower(c.Nit), termino) {
			continue
		}
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// GetByNit busca un cliente por NIT normalizado (pantalla de facturación).
func (uc *ClienteUseCase) GetByNit(nit string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByNit(NormalizarNit(nit))
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	return toClienteResponse(cliente), nil
}

// Actualizar modifica los campos entregados del cliente.
func (uc *ClienteUseCase) Actualizar(id string, in dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	if in.Nit != "" {
		nit := NormalizarNit(in.Nit)
		if nit != cliente.Nit {
			existente, _ := uc.repo.GetByNit(nit)
			if existente != nil && existente.ID != id {
				return nil, domain.ErrNitYaExiste
			}
			cliente.Nit = nit
		}
	}
	if in.Nombre != "" {
		cliente.Nombre = strings.TrimSpace(in.Nombre)
	}
	if in.Direccion != "" {
		cliente.Direccion = strings.TrimSpace(in.Direccion)
	}
	if in.Ciudad != "" {
		cliente.Ciudad = strings.TrimSpace(in.Ciudad)
	}
	if in.Telefono != "" {
		cliente.Telefono = strings.TrimSpace(in.Telefono)
	}
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Eliminar borra el cliente por ID.
func (uc *ClienteUseCase) Eliminar(id string) error {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNoEncontrado
	}
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Nit:       c.Nit,
		Direccion: c.Direccion,
		Ciudad:    c.Ciudad,
		Telefono:  c.Telefono,
		Compras:   c.Compras,
	}
}
