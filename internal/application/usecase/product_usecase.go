package usecase

import (
	"time"

	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/domain"
	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
	"github.com/jhoicas/ventapos-api/pkg/normalize"
)

// SearchLimit máximo de resultados de búsqueda de catálogo.
const SearchLimit = 50

// ProductUseCase casos de uso del catálogo: listado, búsqueda, alta y
// actualización parcial. El stock también lo muta el procesador de ventas.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve todos los productos de la tienda en orden de almacenamiento.
func (uc *ProductUseCase) List(tenantID int64) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	return toProductList(list), nil
}

// Search busca productos (máximo 50 resultados). Si barcode viene, es match
// exacto y query se ignora. Si solo viene query, substring sin distinguir
// mayúsculas ni acentos contra nombre o barcode. Sin filtros: listado acotado.
func (uc *ProductUseCase) Search(tenantID int64, query, barcode string) (*dto.ProductListResponse, error) {
	folded := ""
	if barcode == "" && query != "" {
		folded = normalize.Fold(query)
	}
	list, err := uc.repo.Search(tenantID, folded, barcode, SearchLimit)
	if err != nil {
		return nil, err
	}
	return toProductList(list), nil
}

// Create crea un producto. Name, Price y Stock son obligatorios; stock cero
// explícito es válido, stock ausente no.
func (uc *ProductUseCase) Create(tenantID int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price == nil || in.Stock == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		TenantID:      tenantID,
		Barcode:       in.Barcode,
		Name:          in.Name,
		Price:         *in.Price,
		Cost:          in.Cost,
		Stock:         *in.Stock,
		Category:      in.Category,
		LowStockAlert: in.LowStockAlert,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update fusiona los campos presentes sobre el registro existente y re-estampa
// updated_at. No re-valida invariantes del merge (un stock negativo entrante
// no se rechaza aquí; es política heredada y documentada).
func (uc *ProductUseCase) Update(tenantID, productID int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(tenantID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Cost != nil {
		product.Cost = *in.Cost
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.LowStockAlert != nil {
		product.LowStockAlert = in.LowStockAlert
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func toProductList(list []*entity.Product) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		TenantID:      p.TenantID,
		Barcode:       p.Barcode,
		Name:          p.Name,
		Price:         p.Price,
		Cost:          p.Cost,
		Stock:         p.Stock,
		Category:      p.Category,
		LowStockAlert: p.LowStockAlert,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
