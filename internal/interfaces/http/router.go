package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventapos-api/internal/application/auth"
	"github.com/jhoicas/ventapos-api/internal/application/reporting"
	"github.com/jhoicas/ventapos-api/internal/application/sales"
	"github.com/jhoicas/ventapos-api/internal/application/usecase"
	"github.com/jhoicas/ventapos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	TenantUC  *usecase.TenantUseCase
	ProductUC *usecase.ProductUseCase
	SaleUC    *sales.SaleUseCase
	ReportUC  *reporting.ReportingUseCase
	BackupUC  *usecase.BackupUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas: Bearer Token + tienda activa con suscripción vigente.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), TenantGate(deps.TenantUC))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReportUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/today", saleHandler.Today)
	salesGroup.Get("/stats", saleHandler.Stats)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.ReportUC)
	dashboard.Get("/overview", dashboardHandler.Overview)

	// Settings (protegido)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.TenantUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/tenant", settingsHandler.UpdateTenant)

	// Backup (protegido, sólo admin)
	backupHandler := NewBackupHandler(deps.BackupUC)
	protected.Get("/backup", RequireRole(entity.RoleAdmin), backupHandler.Export)
}
