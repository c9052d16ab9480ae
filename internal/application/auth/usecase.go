package auth

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/domain"
	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
	"github.com/jhoicas/ventapos-api/pkg/jwt"
)

// MinPasswordLen longitud mínima aceptada para contraseñas.
const MinPasswordLen = 6

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase casos de uso de autenticación: registro de tienda y login.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	tenantRepo repository.TenantRepository
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tenantRepo repository.TenantRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tenantRepo: tenantRepo, jwtCfg: jwtCfg}
}

// Register da de alta una tienda nueva: crea el Tenant en plan trial
// (vence a los 30 días) y su usuario admin, y devuelve sesión iniciada.
// Devuelve ErrInvalidInput si falta algún campo o la contraseña es corta,
// y ErrEmailAlreadyExists si el email ya está registrado (comparación exacta).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" || in.StoreName == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < MinPasswordLen {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tenant := &entity.Tenant{
		Name:               in.StoreName,
		Email:              in.Email,
		Plan:               entity.PlanTrial,
		SubscriptionStatus: entity.SubscriptionTrial,
		TrialEndsAt:        now.Add(entity.TrialDays * 24 * time.Hour),
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.tenantRepo.Create(tenant); err != nil {
		return nil, err
	}

	user := &entity.User{
		TenantID:     tenant.ID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         entity.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		// Carrera contra otro registro con el mismo email: el índice único manda.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, tenant.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		User:      *toUserResponse(user),
		Tenant:    *toTenantResponse(tenant),
		Token:     token,
		ExpiresIn: int64(uc.jwtCfg.ExpHours) * 3600,
	}, nil
}

// Login verifica email/password contra el hash bcrypt, genera JWT y retorna
// token + usuario. Nunca compara contraseñas en texto plano.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.TenantID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(uc.jwtCfg.ExpHours) * 3600,
		User:      *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		TenantID:  u.TenantID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	if t == nil {
		return nil
	}
	return &dto.TenantResponse{
		ID:                 t.ID,
		Name:               t.Name,
		Email:              t.Email,
		Phone:              t.Phone,
		Address:            t.Address,
		Plan:               t.Plan,
		SubscriptionStatus: t.SubscriptionStatus,
		TrialEndsAt:        t.TrialEndsAt,
		IsActive:           t.IsActive,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}
