package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getlatam/getla-api/internal/domain/rol"
	apphttp "github.com/getlatam/getla-api/internal/interfaces/http"
	pkgjwt "github.com/getlatam/getla-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUsuarioID = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "getla-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireModulo para autorizar el acceso por la tabla de permisos
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(modulo string) *fiber.App {
	app := fiber.New()
	app.Get("/protegida",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireModulo(modulo),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":  true,
				"rol": apphttp.GetRol(c),
			})
		},
	)
	return app
}

// tokenParaRol genera un JWT con el rol indicado.
func tokenParaRol(t *testing.T, r string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.PerfilClaim{
		ID: testUsuarioID, Nombre: "Test", Rol: r,
	}, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// doRequest lanza una petición GET /protegida y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, headers map[string]string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireModulo
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: admin pasa por encima de la tabla → accede a cualquier módulo.
func TestRequireModulo_AdminAccedeACualquierModulo(t *testing.T) {
	for _, modulo := range rol.Todos() {
		app := buildTestApp(modulo)
		resp := doRequest(t, app, map[string]string{"Authorization": "Bearer " + tokenParaRol(t, "admin")})

		assert.Equal(t, http.StatusOK, resp.StatusCode,
			"admin debe poder acceder al módulo %s", modulo)
		resp.Body.Close()
	}
}

// Caso 2: adminrep accede a repuestos pero no a dotación.
func TestRequireModulo_AdminrepSoloRepuestos(t *testing.T) {
	token := tokenParaRol(t, "adminrep")

	resp := doRequest(t, buildTestApp(rol.ModuloRepuestos), map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, buildTestApp(rol.ModuloDotacion), map[string]string{"Authorization": "Bearer " + token})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"adminrep no debe acceder al módulo dotacion")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MODULO_NO_PERMITIDO")
}

// Caso 3: rol no reconocido no accede a nada (conjunto vacío, no error).
func TestRequireModulo_RolDesconocidoBloqueado(t *testing.T) {
	app := buildTestApp(rol.ModuloRepuestos)
	resp := doRequest(t, app, map[string]string{"Authorization": "Bearer " + tokenParaRol(t, "superadmin")})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 4: token sin rol → 401 MISSING_ROLE.
func TestRequireModulo_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(rol.ModuloRepuestos)
	resp := doRequest(t, app, map[string]string{"Authorization": "Bearer " + tokenParaRol(t, "")})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// Caso 5: sin token → 401 MISSING_TOKEN.
func TestAuthMiddleware_SinToken_Retorna401(t *testing.T) {
	app := buildTestApp(rol.ModuloRepuestos)
	resp := doRequest(t, app, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 6: token malformado → 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(rol.ModuloRepuestos)
	resp := doRequest(t, app, map[string]string{"Authorization": "Bearer token.invalido.aqui"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción del token y claims
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"usuario_id": apphttp.GetUsuarioID(c),
			"rol":        apphttp.GetRol(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenParaRol(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUsuarioID, body["usuario_id"])
	assert.Equal(t, "admin", body["rol"])
}

// El header legacy x-auth-token sigue funcionando como alternativa al Bearer.
func TestAuthMiddleware_AceptaXAuthToken(t *testing.T) {
	app := buildTestApp(rol.ModuloRepuestos)
	resp := doRequest(t, app, map[string]string{"x-auth-token": tokenParaRol(t, "admin")})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con el claim usuario
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConPerfil(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.PerfilClaim{
		ID: testUsuarioID, Nombre: "Ana", Rol: "adminlimp",
	}, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	perfil, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUsuarioID, perfil.ID)
	assert.Equal(t, "Ana", perfil.Nombre)
	assert.Equal(t, "adminlimp", perfil.Rol)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.PerfilClaim{ID: testUsuarioID, Rol: "admin"}, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.PerfilClaim{ID: testUsuarioID, Rol: "admin"}, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
