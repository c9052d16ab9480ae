package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/application/reporting"
	"github.com/jhoicas/ventapos-api/internal/application/sales"
	"github.com/jhoicas/ventapos-api/internal/domain"
)

// dateLayout formato de fechas en query params (startDate, endDate).
const dateLayout = "2006-01-02"

// SaleHandler maneja las peticiones HTTP de ventas (protegido).
type SaleHandler struct {
	saleUC   *sales.SaleUseCase
	reportUC *reporting.ReportingUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(saleUC *sales.SaleUseCase, reportUC *reporting.ReportingUseCase) *SaleHandler {
	return &SaleHandler{saleUC: saleUC, reportUC: reportUC}
}

// Create godoc
// @Summary      Registrar una venta
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Líneas de la venta y método de pago"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	userID := GetUserID(c)
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.saleUC.Create(c.Context(), tenantID, userID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items (con productId y quantity positivos) y paymentMethod son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Today godoc
// @Summary      Ventas del día actual
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales/today [get]
func (h *SaleHandler) Today(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	out, err := h.reportUC.TodaysSales(tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas de ventas en un rango de fechas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "Fecha inicial (YYYY-MM-DD); sin valor cubre desde el principio"
// @Param        endDate    query  string  false  "Fecha final (YYYY-MM-DD), inclusive; sin valor llega hasta hoy"
// @Success      200        {object}  dto.StatsResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/sales/stats [get]
func (h *SaleHandler) Stats(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)

	var startDate, endDate *time.Time
	if raw := c.Query("startDate"); raw != "" {
		t, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "startDate debe tener formato YYYY-MM-DD"})
		}
		startDate = &t
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "endDate debe tener formato YYYY-MM-DD"})
		}
		endDate = &t
	}

	out, err := h.reportUC.Stats(c.Context(), tenantID, startDate, endDate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar el recibo PDF de una venta
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID de la venta"
// @Success      200 {file}  binary
// @Failure      404 {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	saleID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || saleID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	pdfBytes, err := h.saleUC.Receipt(c.Context(), tenantID, saleID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-`+strconv.FormatInt(saleID, 10)+`.pdf"`)
	return c.Send(pdfBytes)
}
