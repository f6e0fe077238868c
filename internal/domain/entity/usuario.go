package entity

import "time"

// Roles válidos para Usuario. Cada rol "adminX" administra una sola área;
// "regular" solo consulta repuestos.
const (
	RolAdmin     = "admin"
	RolAdminRep  = "adminrep"
	RolAdminDot  = "admindot"
	RolAdminLimp = "adminlimp"
	RolAdminMant = "adminmant"
	RolRegular   = "regular"
)

// Usuario representa una cuenta de la consola administrativa.
type Usuario struct {
	ID              string
	Nombre          string
	Cargo           string // cargo laboral, informativo
	Email           string
	Rol             string // admin, adminrep, admindot, adminlimp, adminmant, regular
	Imagen          string // URL de la foto de perfil
	PasswordHash    string // bcrypt hash, nunca plano en dominio después de persistir
	ResetToken      string // vacío si no hay recuperación en curso
	ResetTokenVence time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RolValido indica si el rol pertenece al conjunto cerrado de roles.
func RolValido(rol string) bool {
	switch rol {
	case RolAdmin, RolAdminRep, RolAdminDot, RolAdminLimp, RolAdminMant, RolRegular:
		return true
	}
	return false
}
