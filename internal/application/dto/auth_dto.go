package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
}

// LoginResponse salida con token JWT; la consola decodifica el claim "usuario"
// y usa Aterrizaje para la redirección por rol.
type LoginResponse struct {
	Token      string          `json:"token"`
	Usuario    UsuarioResponse `json:"usuario"`
	Aterrizaje string          `json:"aterrizaje"`
}

// QuienSoyResponse salida de la revalidación de sesión.
type QuienSoyResponse struct {
	Usuario UsuarioResponse `json:"usuario"`
}

// ForgotPasswordRequest entrada para solicitar recuperación de contraseña.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest entrada para restablecer la contraseña con token.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=5"`
}

// MsgResponse respuesta simple con mensaje (la consola muestra msg en alertas).
type MsgResponse struct {
	Msg string `json:"msg"`
}
