package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/application/usecase"
	"github.com/jhoicas/ventapos-api/internal/domain"
	"github.com/jhoicas/ventapos-api/internal/domain/entity"
)

type fakeTenantRepo struct {
	tenant *entity.Tenant
}

func (r *fakeTenantRepo) Create(t *entity.Tenant) error {
	copied := *t
	r.tenant = &copied
	return nil
}

func (r *fakeTenantRepo) GetByID(id int64) (*entity.Tenant, error) {
	if r.tenant != nil && r.tenant.ID == id {
		copied := *r.tenant
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeTenantRepo) Update(t *entity.Tenant) error {
	if r.tenant == nil || r.tenant.ID != t.ID {
		return domain.ErrNotFound
	}
	copied := *t
	r.tenant = &copied
	return nil
}

func trialTenant(trialEndsAt time.Time) *entity.Tenant {
	return &entity.Tenant{
		ID:                 1,
		Name:               "Tienda",
		Plan:               entity.PlanTrial,
		SubscriptionStatus: entity.SubscriptionTrial,
		TrialEndsAt:        trialEndsAt,
		IsActive:           true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ResolveActive
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveActive_PruebaVigente_Pasa(t *testing.T) {
	repo := &fakeTenantRepo{tenant: trialTenant(time.Now().Add(time.Hour))}
	uc := usecase.NewTenantUseCase(repo)

	tenant, err := uc.ResolveActive(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tenant.ID)
}

func TestResolveActive_PruebaVencida_RetornaExpirada(t *testing.T) {
	repo := &fakeTenantRepo{tenant: trialTenant(time.Now().Add(-time.Minute))}
	uc := usecase.NewTenantUseCase(repo)

	_, err := uc.ResolveActive(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrSubscriptionExpired)
}

func TestResolveActive_SuscripcionActivaSinPrueba_Pasa(t *testing.T) {
	tenant := trialTenant(time.Now().Add(-24 * time.Hour))
	tenant.SubscriptionStatus = entity.SubscriptionActive
	repo := &fakeTenantRepo{tenant: tenant}
	uc := usecase.NewTenantUseCase(repo)

	// Con suscripción activa la fecha de la prueba deja de importar.
	_, err := uc.ResolveActive(context.Background(), 1)
	assert.NoError(t, err)
}

func TestResolveActive_TiendaDesactivada_RetornaInactiva(t *testing.T) {
	tenant := trialTenant(time.Now().Add(time.Hour))
	tenant.IsActive = false
	repo := &fakeTenantRepo{tenant: tenant}
	uc := usecase.NewTenantUseCase(repo)

	_, err := uc.ResolveActive(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrTenantInactive)
}

func TestResolveActive_TiendaInexistente_RetornaForbidden(t *testing.T) {
	uc := usecase.NewTenantUseCase(&fakeTenantRepo{})

	_, err := uc.ResolveActive(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Settings
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateTenant_FusionaSoloCamposPresentes(t *testing.T) {
	tenant := trialTenant(time.Now().Add(time.Hour))
	tenant.Email = "original@tienda.test"
	repo := &fakeTenantRepo{tenant: tenant}
	uc := usecase.NewTenantUseCase(repo)

	phone := "555-0101"
	out, err := uc.UpdateTenant(1, dto.UpdateTenantRequest{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, "555-0101", out.Phone)
	assert.Equal(t, "original@tienda.test", out.Email, "email no enviado no debe cambiar")
	assert.Equal(t, entity.PlanTrial, out.Plan, "el plan no es modificable por settings")
}

func TestGetSettings_TiendaInexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewTenantUseCase(&fakeTenantRepo{})

	_, err := uc.GetSettings(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
