package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/getlatam/getla-api/internal/application/dto"
	"github.com/getlatam/getla-api/internal/domain"
	"github.com/getlatam/getla-api/internal/domain/entity"
	"github.com/getlatam/getla-api/internal/domain/repository"
)

// UsuarioUseCase aplica reglas de negocio para cuentas de la consola.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso con el puerto de persistencia.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Crear registra un usuario: valida las etiquetas del request (forma del
// email, imagen como URL), el rol contra el conjunto cerrado, hashea el
// password con bcrypt y persiste. ErrEmailYaExiste si el email está tomado.
func (uc *UsuarioUseCase) Crear(in dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Imagen = strings.TrimSpace(in.Imagen)
	if err := dto.Validar(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEntradaInvalida, err)
	}
	if !entity.RolValido(in.Rol) {
		return nil, domain.ErrEntradaInvalida
	}
	email := in.Email
	existente, _ := uc.repo.GetByEmail(email)
	if existente != nil {
		return nil, domain.ErrEmailYaExiste
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Nombre:       strings.TrimSpace(in.Nombre),
		Cargo:        strings.TrimSpace(in.Cargo),
		Email:        email,
		Rol:          in.Rol,
		Imagen:       strings.TrimSpace(in.Imagen),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (uc *UsuarioUseCase) GetByID(id string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, nil
	}
	return toUsuarioResponse(usuario), nil
}

// Listar devuelve los usuarios, con filtro substring case-insensitive sobre
// nombre o email. El filtro es presentacional: preserva el orden del listado.
func (uc *UsuarioUseCase) Listar(buscar string) ([]*dto.UsuarioResponse, error) {
	lista, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	termino := strings.ToLower(strings.TrimSpace(buscar))
	out := make([]*dto.UsuarioResponse, 0, len(lista))
	for _, u := range lista {
		if termino != "" &&
			!strings.Contains(strings.ToLower(u.Nombre), termino) &&
			!strings.Contains(strings.ToLower(u.Email), termino) {
			continue
		}
		out = append(out, toUsuarioResponse(u))
	}
	return out, nil
}

// Actualizar modifica los campos entregados; password vacío conserva el hash
// actual. Los campos entregados pasan por las etiquetas del request y el rol
// debe pertenecer al conjunto cerrado.
func (uc *UsuarioUseCase) Actualizar(id string, in dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Imagen = strings.TrimSpace(in.Imagen)
	if err := dto.Validar(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEntradaInvalida, err)
	}
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, nil
	}
	if in.Rol != "" {
		if !entity.RolValido(in.Rol) {
			return nil, domain.ErrEntradaInvalida
		}
		usuario.Rol = in.Rol
	}
	if in.Nombre != "" {
		usuario.Nombre = strings.TrimSpace(in.Nombre)
	}
	if in.Cargo != "" {
		usuario.Cargo = strings.TrimSpace(in.Cargo)
	}
	if in.Email != "" {
		email := strings.ToLower(strings.TrimSpace(in.Email))
		if email != usuario.Email {
			existente, _ := uc.repo.GetByEmail(email)
			if existente != nil && existente.ID != id {
				return nil, domain.ErrEmailYaExiste
			}
			usuario.Email = email
		}
	}
	if in.Imagen != "" {
		usuario.Imagen = strings.TrimSpace(in.Imagen)
	}
	if in.Password != "" {
		if len(in.Password) < 5 {
			return nil, domain.ErrEntradaInvalida
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.PasswordHash = string(hash)
	}
	usuario.UpdatedAt = time.Now()
	if err := uc.repo.Update(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Eliminar borra el usuario por ID.
func (uc *UsuarioUseCase) Eliminar(id string) error {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrNoEncontrado
	}
	return uc.repo.Delete(id)
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Cargo:     u.Cargo,
		Email:     u.Email,
		Rol:       u.Rol,
		Imagen:    u.Imagen,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
