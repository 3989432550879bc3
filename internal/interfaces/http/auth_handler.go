package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/payment-terminal-api/internal/application/auth"
	"github.com/jhoicas/payment-terminal-api/internal/application/dto"
)

// AuthHandler maneja registro, login y verificación de email.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler inyectando el caso de uso.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos de registro"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Verify godoc
// @Summary      Marcar email como verificado
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyEmailRequest  true  "Email a verificar"
// @Success      200   {object}  dto.LoginResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/verify [post]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var in dto.VerifyEmailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.VerifyEmail(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
