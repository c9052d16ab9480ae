package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest una línea de la venta: el precio viene del cliente y es el
// que se cobra (snapshot), no se relee del catálogo.
type SaleItemRequest struct {
	ProductID   int64           `json:"productId" validate:"required"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity" validate:"required,min=1"`
}

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"required,min=1"`
	PaymentMethod string            `json:"paymentMethod" validate:"required"`
	CashReceived  *decimal.Decimal  `json:"cashReceived"`
	CashChange    *decimal.Decimal  `json:"cashChange"`
	Notes         string            `json:"notes"`
}

// SaleItemResponse línea de venta tal como quedó almacenada.
type SaleItemResponse struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
}

// SaleResponse venta completa, incluido el total calculado.
type SaleResponse struct {
	ID            int64              `json:"id"`
	TenantID      int64              `json:"tenantId"`
	UserID        int64              `json:"userId"`
	Receipt       string             `json:"receipt"`
	Items         []SaleItemResponse `json:"items"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"paymentMethod"`
	CashReceived  *decimal.Decimal   `json:"cashReceived,omitempty"`
	CashChange    *decimal.Decimal   `json:"cashChange,omitempty"`
	Status        string             `json:"status"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// SaleListResponse lista de ventas (ej. ventas de hoy).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}
