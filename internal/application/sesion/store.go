package sesion

import (
	"sync"
	"time"

	"github.com/getlatam/getla-api/internal/domain/entity"
)

// Store es el puerto inyectable de la sesión persistida: token opaco más el
// snapshot del perfil. Se escribe en el login, se lee en cada pantalla y se
// limpia en el logout o cuando la revalidación falla. No hay expiración aquí;
// la vigencia la decide el JWT y se descubre reactivamente.
type Store interface {
	Guardar(token string, perfil entity.Usuario)
	Obtener(token string) (entity.Sesion, bool)
	Limpiar(token string)
}

// MemoriaStore implementación en memoria del Store, segura para concurrencia.
type MemoriaStore struct {
	mu       sync.RWMutex
	sesiones map[string]entity.Sesion
}

// NewMemoriaStore construye un store vacío.
func NewMemoriaStore() *MemoriaStore {
	return &MemoriaStore{sesiones: make(map[string]entity.Sesion)}
}

var _ Store = (*MemoriaStore)(nil)

// Guardar registra o reemplaza la sesión del token.
func (s *MemoriaStore) Guardar(token string, perfil entity.Usuario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sesiones[token] = entity.Sesion{
		Token:     token,
		Perfil:    perfil,
		CreatedAt: time.Now(),
	}
}

// Obtener devuelve la sesión del token si existe.
func (s *MemoriaStore) Obtener(token string) (entity.Sesion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ses, ok := s.sesiones[token]
	return ses, ok
}

// Limpiar destruye la sesión del token. Limpiar un token inexistente es no-op.
func (s *MemoriaStore) Limpiar(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sesiones, token)
}
