package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/getlatam/getla-api/internal/domain"
	"github.com/getlatam/getla-api/internal/domain/entity"
	"github.com/getlatam/getla-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioCols = `id, nombre, cargo, email, rol, imagen, password_hash, reset_token, reset_token_vence, created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Cargo, u.Email, u.Rol, u.Imagen, u.PasswordHash,
		u.ResetToken, u.ResetTokenVence, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailYaExiste
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get usuario")
}

// GetByEmail obtiene un usuario por email (login).
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get usuario by email")
}

// GetByResetToken obtiene un usuario por token de recuperación vigente.
func (r *UsuarioRepo) GetByResetToken(token string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE reset_token = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, token), "get usuario by reset_token")
}

// Update actualiza un usuario.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET nombre = $2, cargo = $3, email = $4, rol = $5, imagen = $6,
			password_hash = $7, reset_token = $8, reset_token_vence = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Cargo, u.Email, u.Rol, u.Imagen, u.PasswordHash,
		u.ResetToken, u.ResetTokenVence, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailYaExiste
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// List lista todos los usuarios ordenados por fecha de creación.
func (r *UsuarioRepo) List() ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Cargo, &u.Email, &u.Rol, &u.Imagen,
			&u.PasswordHash, &u.ResetToken, &u.ResetTokenVence, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina un usuario por ID.
func (r *UsuarioRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) scanOne(row pgx.Row, op string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Nombre, &u.Cargo, &u.Email, &u.Rol, &u.Imagen,
		&u.PasswordHash, &u.ResetToken, &u.ResetTokenVence, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
