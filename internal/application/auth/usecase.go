package auth

import (
	"context"
	"time"

	"github.com/tu-usuario/negocios-rp/internal/application/dto"
	"github.com/tu-usuario/negocios-rp/internal/domain"
	"github.com/tu-usuario/negocios-rp/internal/domain/entity"
	"github.com/tu-usuario/negocios-rp/internal/domain/repository"
	"github.com/tu-usuario/negocios-rp/pkg/jwt"
)

// JWTConfig configuración para la emisión de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase resuelve la identidad contra el proveedor externo y emite la sesión.
//
// El espejo local del usuario se sincroniza una sola vez por login (upsert con
// los claims verificados); las peticiones siguientes validan el JWT localmente,
// sin escritura en BD ni llamada al proveedor.
type AuthUseCase struct {
	provider IdentityProvider
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(provider IdentityProvider, userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{provider: provider, userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login introspecta el access token, refresca el espejo local del usuario con los
// claims verificados (nunca con datos del body) y emite un token de sesión propio.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.AccessToken == "" {
		return nil, domain.ErrUnauthorized
	}
	identity, err := uc.provider.Introspect(ctx, in.AccessToken)
	if err != nil {
		return nil, err
	}

	name := identity.Name
	if name == "" {
		name = identity.Username
	}
	now := time.Now()
	user := &entity.User{
		ID:        identity.ID,
		Email:     identity.Email,
		Name:      name,
		Avatar:    identity.Avatar,
		Role:      entity.RoleEmployee, // solo se aplica en la creación; el upsert no pisa el rol existente
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.userRepo.Upsert(user); err != nil {
		return nil, err
	}
	// Releer para obtener rol y created_at reales tras el upsert
	stored, err := uc.userRepo.GetByID(identity.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, domain.ErrUserNotFound
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, stored.ID, stored.Email, stored.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(stored),
	}, nil
}

// Me devuelve el espejo local del usuario autenticado.
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Avatar:    u.Avatar,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
