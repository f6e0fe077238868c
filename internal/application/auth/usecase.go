package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/getlatam/getla-api/internal/application/dto"
	"github.com/getlatam/getla-api/internal/application/sesion"
	"github.com/getlatam/getla-api/internal/domain"
	"github.com/getlatam/getla-api/internal/domain/entity"
	"github.com/getlatam/getla-api/internal/domain/repository"
	"github.com/getlatam/getla-api/internal/domain/rol"
	"github.com/getlatam/getla-api/pkg/jwt"
	"github.com/getlatam/getla-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// ResetConfig configuración del flujo de recuperación de contraseña.
type ResetConfig struct {
	TokenMinutes int
	ConsoleURL   string
}

// AuthUseCase casos de uso de autenticación: login, revalidación de sesión,
// logout y recuperación de contraseña.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	store       sesion.Store
	jwtCfg      JWTConfig
	resetCfg    ResetConfig
	log         *logger.Logger
}

// Garantiza que AuthUseCase sirve como Revalidador de la puerta de navegación.
var _ sesion.Revalidador = (*AuthUseCase)(nil)

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, store sesion.Store, jwtCfg JWTConfig, resetCfg ResetConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, store: store, jwtCfg: jwtCfg, resetCfg: resetCfg, log: log}
}

// Login verifica email/password, genera el JWT con el claim "usuario" y
// registra la sesión en el store. La respuesta incluye la ruta de aterrizaje
// del rol; un rol no reconocido aterriza en vacío y la consola fuerza logout.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrNoAutorizado
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.PerfilClaim{
		ID:     usuario.ID,
		Nombre: usuario.Nombre,
		Rol:    usuario.Rol,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.store.Guardar(token, *usuario)
	return &dto.LoginResponse{
		Token:      token,
		Usuario:    *toUsuarioResponse(usuario),
		Aterrizaje: rol.Aterrizaje(usuario.Rol),
	}, nil
}

// QuienSoy devuelve el perfil fresco del usuario; es el puerto de
// revalidación de la puerta de navegación. (nil, nil) = usuario eliminado.
func (uc *AuthUseCase) QuienSoy(_ context.Context, usuarioID string) (*entity.Usuario, error) {
	return uc.usuarioRepo.GetByID(usuarioID)
}

// Logout destruye la sesión del token.
func (uc *AuthUseCase) Logout(token string) {
	uc.store.Limpiar(token)
}

// ForgotPassword emite un token de reseteo con vencimiento y lo persiste en el
// usuario. Siempre responde sin revelar si el email existe.
// TODO: enviar el enlace por correo cuando la operación tenga SMTP propio;
// por ahora queda en el log del servidor.
func (uc *AuthUseCase) ForgotPassword(in dto.ForgotPasswordRequest) error {
	usuario, err := uc.usuarioRepo.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return err
	}
	if usuario == nil {
		return nil // no revelar cuentas inexistentes
	}
	usuario.ResetToken = uuid.New().String()
	usuario.ResetTokenVence = time.Now().Add(time.Duration(uc.resetCfg.TokenMinutes) * time.Minute)
	usuario.UpdatedAt = time.Now()
	if err := uc.usuarioRepo.Update(usuario); err != nil {
		return err
	}
	uc.log.Info().
		Str("usuario_id", usuario.ID).
		Str("enlace", uc.resetCfg.ConsoleURL+"/reset-password/"+usuario.ResetToken).
		Msg("token de recuperación emitido")
	return nil
}

// ResetPassword valida el token, fija la nueva contraseña y lo invalida.
func (uc *AuthUseCase) ResetPassword(token string, in dto.ResetPasswordRequest) error {
	if len(in.Password) < 5 {
		return domain.ErrEntradaInvalida
	}
	usuario, err := uc.usuarioRepo.GetByResetToken(token)
	if err != nil {
		return err
	}
	if usuario == nil || usuario.ResetToken == "" || time.Now().After(usuario.ResetTokenVence) {
		return domain.ErrTokenReseteo
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	usuario.PasswordHash = string(hash)
	usuario.ResetToken = ""
	usuario.ResetTokenVence = time.Time{}
	usuario.UpdatedAt = time.Now()
	return uc.usuarioRepo.Update(usuario)
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
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
