package usecase

import (
	"time"

	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/domain"
	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

// BackupDocument volcado descargable de las colecciones de una tienda.
// Los usuarios van sin hash de contraseña.
type BackupDocument struct {
	GeneratedAt time.Time             `json:"generatedAt"`
	Tenant      dto.TenantResponse    `json:"tenant"`
	Users       []dto.UserResponse    `json:"users"`
	Products    []dto.ProductResponse `json:"products"`
	Sales       []dto.SaleResponse    `json:"sales"`
}

// BackupUseCase arma el respaldo completo de la tienda (solo rol admin en el
// borde HTTP). El volcado queda acotado a la tienda del solicitante.
type BackupUseCase struct {
	tenantRepo  repository.TenantRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewBackupUseCase construye el caso de uso.
func NewBackupUseCase(
	tenantRepo repository.TenantRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) *BackupUseCase {
	return &BackupUseCase{
		tenantRepo:  tenantRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
	}
}

// Export reúne tienda, usuarios, catálogo y todas las ventas en un documento.
func (uc *BackupUseCase) Export(tenantID int64) (*BackupDocument, error) {
	tenant, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}

	users, err := uc.userRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	sales, err := uc.saleRepo.ListByRange(tenantID, time.Unix(0, 0), now)
	if err != nil {
		return nil, err
	}

	doc := &BackupDocument{
		GeneratedAt: now,
		Tenant:      *toTenantResponse(tenant),
		Users:       make([]dto.UserResponse, 0, len(users)),
		Products:    make([]dto.ProductResponse, 0, len(products)),
		Sales:       make([]dto.SaleResponse, 0, len(sales)),
	}
	for _, u := range users {
		doc.Users = append(doc.Users, dto.UserResponse{
			ID:        u.ID,
			TenantID:  u.TenantID,
			Email:     u.Email,
			Name:      u.Name,
			Role:      u.Role,
			IsActive:  u.IsActive,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}
	for _, p := range products {
		doc.Products = append(doc.Products, *toProductResponse(p))
	}
	for _, s := range sales {
		doc.Sales = append(doc.Sales, toBackupSale(s))
	}
	return doc, nil
}

func toBackupSale(s *entity.Sale) dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
		})
	}
	return dto.SaleResponse{
		ID:            s.ID,
		TenantID:      s.TenantID,
		UserID:        s.UserID,
		Receipt:       s.Receipt,
		Items:         items,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		CashReceived:  s.CashReceived,
		CashChange:    s.CashChange,
		Status:        s.Status,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
	}
}
