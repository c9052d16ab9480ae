package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación del puerto TenantRepository sobre PostgreSQL (usable con pool o tx).
type TenantRepo struct {
	q Querier
}

// NewTenantRepository construye el adaptador de persistencia para tiendas. Pasar pool o tx (Querier).
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

// Create persiste una tienda nueva y asigna su ID serial.
func (r *TenantRepo) Create(tenant *entity.Tenant) error {
	query := `
		INSERT INTO tenants (name, email, phone, address, plan, subscription_status, trial_ends_at, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		tenant.Name, tenant.Email, tenant.Phone, tenant.Address,
		tenant.Plan, tenant.SubscriptionStatus, tenant.TrialEndsAt,
		tenant.IsActive, tenant.CreatedAt, tenant.UpdatedAt,
	).Scan(&tenant.ID)
	if err != nil {
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID. Devuelve nil si no existe.
func (r *TenantRepo) GetByID(id int64) (*entity.Tenant, error) {
	query := `
		SELECT id, name, email, phone, address, plan, subscription_status, trial_ends_at, is_active, created_at, updated_at
		FROM tenants WHERE id = $1`
	var t entity.Tenant
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Name, &t.Email, &t.Phone, &t.Address,
		&t.Plan, &t.SubscriptionStatus, &t.TrialEndsAt,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}

// Update actualiza el perfil de la tienda (no toca plan ni suscripción por separado:
// el caso de uso decide qué campos cambian antes de llamar).
func (r *TenantRepo) Update(tenant *entity.Tenant) error {
	query := `
		UPDATE tenants
		SET name = $2, email = $3, phone = $4, address = $5, plan = $6,
		    subscription_status = $7, trial_ends_at = $8, is_active = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		tenant.ID, tenant.Name, tenant.Email, tenant.Phone, tenant.Address,
		tenant.Plan, tenant.SubscriptionStatus, tenant.TrialEndsAt,
		tenant.IsActive, tenant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}
	return nil
}
