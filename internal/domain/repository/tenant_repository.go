package repository

import "github.com/jhoicas/ventapos-api/internal/domain/entity"

// TenantRepository define el puerto de persistencia para Tenant (DIP).
type TenantRepository interface {
	Create(tenant *entity.Tenant) error
	GetByID(id int64) (*entity.Tenant, error)
	Update(tenant *entity.Tenant) error
}
