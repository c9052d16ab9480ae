package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLowStockAlert umbral de stock bajo cuando el producto no define uno propio.
const DefaultLowStockAlert = 5

// Product representa un producto del catálogo de una tienda.
// Stock nunca se reporta negativo: el procesador de ventas lo recorta en cero.
type Product struct {
	ID            int64
	TenantID      int64
	Barcode       string
	Name          string
	Price         decimal.Decimal // precio de venta
	Cost          decimal.Decimal // costo unitario
	Stock         int64
	Category      string
	LowStockAlert *int64 // nil = usar DefaultLowStockAlert
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
