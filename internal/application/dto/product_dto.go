package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Price y Stock son punteros para distinguir "cero explícito" de "ausente":
// stock 0 es válido, stock omitido no.
type CreateProductRequest struct {
	Barcode       string           `json:"barcode"`
	Name          string           `json:"name" validate:"required,min=1,max=200"`
	Price         *decimal.Decimal `json:"price" validate:"required"`
	Cost          decimal.Decimal  `json:"cost"`
	Stock         *int64           `json:"stock" validate:"required"`
	Category      string           `json:"category"`
	LowStockAlert *int64           `json:"lowStockAlert"`
}

// UpdateProductRequest actualización parcial: solo los campos presentes se
// fusionan sobre el registro existente, sin re-validar invariantes del merge.
type UpdateProductRequest struct {
	Barcode       *string          `json:"barcode"`
	Name          *string          `json:"name"`
	Price         *decimal.Decimal `json:"price"`
	Cost          *decimal.Decimal `json:"cost"`
	Stock         *int64           `json:"stock"`
	Category      *string          `json:"category"`
	LowStockAlert *int64           `json:"lowStockAlert"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            int64           `json:"id"`
	TenantID      int64           `json:"tenantId"`
	Barcode       string          `json:"barcode"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	Stock         int64           `json:"stock"`
	Category      string          `json:"category"`
	LowStockAlert *int64          `json:"lowStockAlert,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ProductListResponse lista de productos de la tienda.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
