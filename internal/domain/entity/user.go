package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// User representa un usuario del sistema (pertenece a un Tenant).
// El email es único a nivel global, no por tienda.
type User struct {
	ID           int64
	TenantID     int64
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, cashier
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
