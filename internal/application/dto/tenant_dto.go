package dto

import "time"

// TenantResponse salida de una tienda.
type TenantResponse struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	Plan               string    `json:"plan"`
	SubscriptionStatus string    `json:"subscriptionStatus"`
	TrialEndsAt        time.Time `json:"trialEndsAt"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// UpdateTenantRequest actualización parcial de los datos de la tienda.
// Plan, estado de suscripción y flag de actividad no se tocan por esta vía.
type UpdateTenantRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// SettingsResponse salida de GET /api/settings: perfil y suscripción de la tienda.
type SettingsResponse struct {
	Tenant TenantResponse `json:"tenant"`
}
