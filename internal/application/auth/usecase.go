// Package auth implementa el proveedor de identidad local: registro con
// bcrypt, login con JWT y verificación de email. Una sesión sin email
// verificado no accede a la aplicación principal.
package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/payment-terminal-api/internal/application/dto"
	"github.com/jhoicas/payment-terminal-api/internal/application/store"
	"github.com/jhoicas/payment-terminal-api/internal/domain"
	"github.com/jhoicas/payment-terminal-api/internal/domain/entity"
	"github.com/jhoicas/payment-terminal-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	store  *store.Store
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso sobre el contenedor de estado.
func NewAuthUseCase(st *store.Store, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{store: st, jwtCfg: jwtCfg}
}

// Register crea la cuenta con el password hasheado (bcrypt). El email queda
// sin verificar hasta que se confirme. Devuelve ErrEmailAlreadyExists si ya
// hay una cuenta con ese email.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, domain.NewValidationError("email", "el email es obligatorio")
	}
	if len(in.Password) < 6 {
		return nil, domain.NewValidationError("password", "mínimo 6 caracteres")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = email
	}
	user := entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.store.AddUser(user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// Login verifica credenciales y genera el token de sesión. El claim
// email_verified viaja en el token para que el middleware pueda devolver a la
// sesión al estado "por verificar" sin consultar el estado.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, ok := uc.store.UserByEmail(email)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.EmailVerified, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

// VerifyEmail marca la cuenta como verificada y devuelve un token nuevo con
// el claim actualizado. En producción esto lo dispararía el enlace del correo
// de confirmación; el contrato es el mismo.
func (uc *AuthUseCase) VerifyEmail(in dto.VerifyEmailRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	found, err := uc.store.MarkEmailVerified(email)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrUserNotFound
	}
	user, _ := uc.store.UserByEmail(email)
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, true, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

func toUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}
