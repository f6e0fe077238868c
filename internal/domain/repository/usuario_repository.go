package repository

import "github.com/getlatam/getla-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	// GetByResetToken busca por token de recuperación vigente o no; el caso de
	// uso valida la fecha de vencimiento.
	GetByResetToken(token string) (*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	List() ([]*entity.Usuario, error)
	Delete(id string) error
}
