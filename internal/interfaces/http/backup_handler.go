package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/application/usecase"
	"github.com/jhoicas/ventapos-api/internal/domain"
)

// BackupHandler exporta los datos de la tienda (protegido, sólo admin).
type BackupHandler struct {
	uc *usecase.BackupUseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *usecase.BackupUseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar respaldo JSON de la tienda
// @Description  Usuarios (sin hash de contraseña), productos y ventas de la
// @Description  tienda del token. Requiere rol admin.
// @Tags         backup
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  usecase.BackupDocument
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/backup [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	doc, err := h.uc.Export(tenantID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := "backup-" + time.Now().Format("2006-01-02") + ".json"
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.JSON(doc)
}
