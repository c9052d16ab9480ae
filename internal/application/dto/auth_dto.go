package dto

import "time"

// RegisterRequest entrada para el registro de una tienda nueva:
// crea Tenant en período de prueba + usuario admin.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Name      string `json:"name" validate:"required,min=1,max=200"`
	StoreName string `json:"storeName" validate:"required,min=1,max=200"`
}

// LoginRequest entrada para login (email + password).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	TenantID  int64     `json:"tenantId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterResponse salida del registro: tienda, admin y sesión iniciada.
type RegisterResponse struct {
	User      UserResponse   `json:"user"`
	Tenant    TenantResponse `json:"tenant"`
	Token     string         `json:"token"`
	ExpiresIn int64          `json:"expiresIn"` // segundos de vigencia del token
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"`
	User      UserResponse `json:"user"`
}
