package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PerfilClaim es el snapshot del usuario embebido en el token.
// La consola lo decodifica en el login (jwtDecode(token).usuario) para
// decidir la pantalla de aterrizaje según el rol, sin ida extra al backend.
type PerfilClaim struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

// Claims incluye los claims estándar JWT más el perfil de usuario de GETLA.
type Claims struct {
	jwt.RegisteredClaims
	Usuario PerfilClaim `json:"usuario"`
}

// Generate genera un token JWT firmado con el perfil embebido.
func Generate(secret string, perfil PerfilClaim, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   perfil.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Usuario: perfil,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el perfil embebido.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (PerfilClaim, error) {
	if secret == "" {
		return PerfilClaim{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return PerfilClaim{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return PerfilClaim{}, fmt.Errorf("claims inválidos")
	}
	return claims.Usuario, nil
}
