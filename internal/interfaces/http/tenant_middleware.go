package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/domain"
	"github.com/jhoicas/ventapos-api/internal/domain/entity"
)

// tenantResolver es el contrato mínimo que necesita el middleware para
// verificar la tienda. Lo implementa *usecase.TenantUseCase; el uso de
// interfaz evita el import circular.
type tenantResolver interface {
	ResolveActive(ctx context.Context, tenantID int64) (*entity.Tenant, error)
}

// TenantGate devuelve un middleware Fiber que verifica que la tienda del
// token JWT existe, está activa y con suscripción o prueba vigente. Debe
// usarse DESPUÉS de AuthMiddleware (necesita LocalTenantID).
//
// Comportamiento:
//   - 403 Forbidden → tienda desactivada o con suscripción/prueba vencida.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
//   - Si no hay tenant_id en el contexto, responde 401 (el AuthMiddleware
//     debería haberlo puesto).
func TenantGate(resolver tenantResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenantID := GetTenantID(c)
		if tenantID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "tenant_id no encontrado en el token",
			})
		}

		_, err := resolver.ResolveActive(c.Context(), tenantID)
		switch err {
		case nil:
			return c.Next()
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "la tienda del token no existe",
			})
		case domain.ErrTenantInactive:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "TENANT_INACTIVE",
				Message: "la tienda está desactivada",
			})
		case domain.ErrSubscriptionExpired:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "SUBSCRIPTION_EXPIRED",
				Message: "la suscripción o el período de prueba ha vencido",
			})
		default:
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "TENANT_CHECK_FAILED",
				Message: "no se pudo verificar la tienda, intente más tarde",
			})
		}
	}
}
