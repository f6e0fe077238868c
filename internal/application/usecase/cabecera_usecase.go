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

// CabeceraUseCase aplica reglas de negocio para sucursales.
type CabeceraUseCase struct {
	repo repository.CabeceraRepository
}

// NewCabeceraUseCase construye el caso de uso.
func NewCabeceraUseCase(repo repository.CabeceraRepository) *CabeceraUseCase {
	return &CabeceraUseCase{repo: repo}
}

// Crear registra una sucursal.
func (uc *CabeceraUseCase) Crear(in dto.CrearCabeceraRequest) (*dto.CabeceraResponse, error) {
	now := time.Now()
	cabecera := &entity.Cabecera{
		ID:        uuid.New().String(),
		Local:     strings.TrimSpace(in.Local),
		Nit:       strings.TrimSpace(in.Nit),
		Direccion: strings.TrimSpace(in.Direccion),
		Telefono:  strings.TrimSpace(in.Telefono),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cabecera); err != nil {
		return nil, err
	}
	return toCabeceraResponse(cabecera), nil
}

// Listar devuelve las sucursales, con filtro substring case-insensitive sobre
// el NIT o el nombre del local.
func (uc *CabeceraUseCase) Listar(buscar string) ([]*dto.CabeceraResponse, error) {
	lista, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	termino := strings.ToLower(strings.TrimSpace(buscar))
	out := make([]*dto.CabeceraResponse, 0, len(lista))
	for _, c := range lista {
		if termino != "" &&
			!strings.Contains(strings.ToLower(c.Nit), termino) &&
			!strings.Contains(strings.ToLower(c.Local), termino) {
			continue
		}
		out = append(out, toCabeceraResponse(c))
	}
	return out, nil
}

// Actualizar modifica los campos entregados de la sucursal.
func (uc *CabeceraUseCase) Actualizar(id string, in dto.ActualizarCabeceraRequest) (*dto.CabeceraResponse, error) {
	cabecera, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cabecera == nil {
		return nil, nil
	}
	if in.Local != "" {
		cabecera.Local = strings.TrimSpace(in.Local)
	}
	if in.Nit != "" {
		cabecera.Nit = strings.TrimSpace(in.Nit)
	}
	if in.Direccion != "" {
		cabecera.Direccion = strings.TrimSpace(in.Direccion)
	}
	if in.Telefono != "" {
		cabecera.Telefono = strings.TrimSpace(in.Telefono)
	}
	if in.Email != "" {
		cabecera.Email = strings.ToLower(strings.TrimSpace(in.Email))
	}
	cabecera.UpdatedAt = time.Now()
	if err := uc.repo.Update(cabecera); err != nil {
		return nil, err
	}
	return toCabeceraResponse(cabecera), nil
}

// Eliminar borra la sucursal por ID.
func (uc *CabeceraUseCase) Eliminar(id string) error {
	cabecera, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cabecera == nil {
		return domain.ErrNoEncontrado
	}
	return uc.repo.Delete(id)
}

func toCabeceraResponse(c *entity.Cabecera) *dto.CabeceraResponse {
	return &dto.CabeceraResponse{
		ID:        c.ID,
		Local:     c.Local,
		Nit:       c.Nit,
		Direccion: c.Direccion,
		Telefono:  c.Telefono,
		Email:     c.Email,
	}
}
