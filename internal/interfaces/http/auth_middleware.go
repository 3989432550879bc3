package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/payment-terminal-api/internal/application/dto"
	"github.com/jhoicas/payment-terminal-api/pkg/jwt"
)

// Locals keys para los datos de sesión en Fiber.
const (
	LocalUserID        = "user_id"
	LocalUserEmail     = "user_email"
	LocalEmailVerified = "email_verified"
)

// AuthMiddleware valida el Bearer Token JWT y extrae los claims a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserEmail, claims.Email)
		c.Locals(LocalEmailVerified, claims.EmailVerified)
		return c.Next()
	}
}

// RequireVerifiedEmail bloquea sesiones cuyo email no está verificado.
// Debe ir después de AuthMiddleware.
func RequireVerifiedEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		verified, _ := c.Locals(LocalEmailVerified).(bool)
		if !verified {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "EMAIL_NOT_VERIFIED",
				Message: "verifique su email para acceder a la aplicación",
			})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserEmail devuelve el email del contexto (después del middleware de auth).
func GetUserEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalUserEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
