package usecase_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventapos-api/internal/application/usecase"
	"github.com/jhoicas/ventapos-api/internal/domain"
	"github.com/jhoicas/ventapos-api/internal/domain/entity"
)

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { return nil }
func (r *fakeUserRepo) GetByID(int64) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) FindByEmail(string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) ListByTenant(tenantID int64) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.TenantID == tenantID {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(*entity.Sale) error                { return nil }
func (r *fakeSaleRepo) GetByID(_, _ int64) (*entity.Sale, error) { return nil, nil }
func (r *fakeSaleRepo) ListByRange(tenantID int64, start, end time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.TenantID == tenantID && !s.CreatedAt.Before(start) && !s.CreatedAt.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func TestBackupExport_NoIncluyeHashesDePassword(t *testing.T) {
	tenantRepo := &fakeTenantRepo{tenant: trialTenant(time.Now().Add(time.Hour))}
	userRepo := &fakeUserRepo{users: []*entity.User{
		{ID: 1, TenantID: 1, Email: "admin@tienda.test", PasswordHash: "$2a$10$secretisimo", Role: entity.RoleAdmin},
	}}
	uc := usecase.NewBackupUseCase(tenantRepo, userRepo, &fakeProductRepo{}, &fakeSaleRepo{})

	doc, err := uc.Export(1)
	require.NoError(t, err)
	require.Len(t, doc.Users, 1)

	// El documento serializado no debe contener el hash bajo ningún nombre.
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secretisimo")
	assert.Equal(t, "admin@tienda.test", doc.Users[0].Email)
}

func TestBackupExport_AcotadoALaTiendaDelToken(t *testing.T) {
	tenantRepo := &fakeTenantRepo{tenant: trialTenant(time.Now().Add(time.Hour))}
	userRepo := &fakeUserRepo{users: []*entity.User{
		{ID: 1, TenantID: 1, Email: "mia@tienda.test"},
		{ID: 2, TenantID: 2, Email: "ajena@otra.test"},
	}}
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		{ID: 1, TenantID: 1, Total: decimal.RequireFromString("5.00"), CreatedAt: time.Now()},
		{ID: 2, TenantID: 2, Total: decimal.RequireFromString("9.00"), CreatedAt: time.Now()},
	}}
	uc := usecase.NewBackupUseCase(tenantRepo, userRepo, &fakeProductRepo{}, saleRepo)

	doc, err := uc.Export(1)
	require.NoError(t, err)

	require.Len(t, doc.Users, 1)
	assert.Equal(t, "mia@tienda.test", doc.Users[0].Email)
	require.Len(t, doc.Sales, 1)
	assert.Equal(t, int64(1), doc.Sales[0].ID)
}

func TestBackupExport_TiendaInexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewBackupUseCase(&fakeTenantRepo{}, &fakeUserRepo{}, &fakeProductRepo{}, &fakeSaleRepo{})

	_, err := uc.Export(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
