package repository

import "github.com/jhoicas/ventapos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	// FindByEmail busca por email exacto (case-sensitive, único global).
	FindByEmail(email string) (*entity.User, error)
	ListByTenant(tenantID int64) ([]*entity.User, error)
}
