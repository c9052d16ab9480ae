package entity

import "time"

// Planes y estados de suscripción.
const (
	PlanTrial = "trial"

	SubscriptionTrial  = "trial"
	SubscriptionActive = "active"
)

// TrialDays duración del período de prueba otorgado en el registro.
const TrialDays = 30

// Tenant representa una tienda/cuenta del sistema (multi-tenant).
// Todos los usuarios, productos y ventas pertenecen a un Tenant.
type Tenant struct {
	ID                 int64
	Name               string
	Email              string
	Phone              string
	Address            string
	Plan               string // trial al registrarse
	SubscriptionStatus string // trial, active, cancelled, ...
	TrialEndsAt        time.Time
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Usable indica si la tienda puede operar en el instante dado:
// debe estar activa y con suscripción vigente o período de prueba sin vencer.
func (t *Tenant) Usable(now time.Time) bool {
	if !t.IsActive {
		return false
	}
	return t.SubscriptionStatus == SubscriptionActive || now.Before(t.TrialEndsAt)
}
