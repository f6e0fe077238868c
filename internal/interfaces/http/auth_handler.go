package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/getlatam/getla-api/internal/application/auth"
	"github.com/getlatam/getla-api/internal/application/dto"
	"github.com/getlatam/getla-api/internal/domain"
)

// AuthHandler maneja login, revalidación, logout y recuperación de contraseña.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUsuarioNoEncontrado) || errors.Is(err, domain.ErrNoAutorizado) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// QuienSoy godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.QuienSoyResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/quien-soy [get]
func (h *AuthHandler) QuienSoy(c *fiber.Ctx) error {
	usuario, err := h.uc.QuienSoy(c.Context(), GetUsuarioID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if usuario == nil {
		// La cuenta fue eliminada con el token aún vigente: la consola fuerza logout.
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "el usuario ya no existe"})
	}
	return c.JSON(dto.QuienSoyResponse{Usuario: *toUsuarioResponse(usuario)})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.MsgResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout(GetToken(c))
	return c.JSON(dto.MsgResponse{Msg: "sesión cerrada"})
}

// ForgotPassword godoc
// @Summary      Solicitar recuperación de contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "email"
// @Success      200   {object}  dto.MsgResponse
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	if err := h.uc.ForgotPassword(in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// Siempre el mismo mensaje: no se revela si la cuenta existe.
	return c.JSON(dto.MsgResponse{Msg: "si la cuenta existe, se envió un enlace de recuperación"})
}

// ResetPassword godoc
// @Summary      Restablecer contraseña con token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "token de recuperación"
// @Param        body   body  dto.ResetPasswordRequest  true  "password"
// @Success      200    {object}  dto.MsgResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/auth/reset-password/{token} [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ResetPassword(c.Params("token"), in); err != nil {
		if errors.Is(err, domain.ErrTokenReseteo) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "RESET_TOKEN", Message: "token de recuperación inválido o vencido"})
		}
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 5 caracteres"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MsgResponse{Msg: "contraseña actualizada"})
}
