package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/domain"
	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

// TenantUseCase casos de uso de la tienda: perfil/settings y la verificación
// de actividad que corre en cada petición autenticada.
type TenantUseCase struct {
	repo repository.TenantRepository
}

// NewTenantUseCase construye el caso de uso.
func NewTenantUseCase(repo repository.TenantRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo}
}

// ResolveActive carga la tienda y verifica que pueda operar. Es la puerta
// obligatoria posterior a la autenticación, no una optimización:
//   - ErrForbidden            → tienda inexistente
//   - ErrTenantInactive       → tienda desactivada
//   - ErrSubscriptionExpired  → suscripción inactiva y prueba vencida
func (uc *TenantUseCase) ResolveActive(_ context.Context, tenantID int64) (*entity.Tenant, error) {
	tenant, err := uc.repo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrForbidden
	}
	if !tenant.IsActive {
		return nil, domain.ErrTenantInactive
	}
	if !tenant.Usable(time.Now()) {
		return nil, domain.ErrSubscriptionExpired
	}
	return tenant, nil
}

// GetSettings devuelve el perfil y estado de suscripción de la tienda.
func (uc *TenantUseCase) GetSettings(tenantID int64) (*dto.SettingsResponse, error) {
	tenant, err := uc.repo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.SettingsResponse{Tenant: *toTenantResponse(tenant)}, nil
}

// UpdateTenant fusiona los campos presentes sobre el perfil de la tienda.
// Plan, estado de suscripción y actividad no son modificables por esta vía.
func (uc *TenantUseCase) UpdateTenant(tenantID int64, in dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	tenant, err := uc.repo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		tenant.Name = *in.Name
	}
	if in.Email != nil {
		tenant.Email = *in.Email
	}
	if in.Phone != nil {
		tenant.Phone = *in.Phone
	}
	if in.Address != nil {
		tenant.Address = *in.Address
	}
	tenant.UpdatedAt = time.Now()
	if err := uc.repo.Update(tenant); err != nil {
		return nil, err
	}
	return toTenantResponse(tenant), nil
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
