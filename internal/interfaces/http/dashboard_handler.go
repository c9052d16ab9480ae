package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/application/reporting"
)

// DashboardHandler sirve la vista agregada del panel de control.
type DashboardHandler struct {
	uc *reporting.ReportingUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reporting.ReportingUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Overview godoc
// @Summary      Resumen del día para el panel de control
// @Description  Ventas e ingresos de hoy, ticket promedio, productos con stock
// @Description  bajo, desglose por método de pago y últimas ventas.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OverviewResponse
// @Router       /api/dashboard/overview [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	out, err := h.uc.Overview(c.Context(), tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
