package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult acumulado por producto dentro de un período.
type TopProductResult struct {
	ProductID   int64
	ProductName string
	Quantity    int64
	Revenue     decimal.Decimal
}

// PaymentMethodCount conteo de ventas por método de pago.
type PaymentMethodCount struct {
	Method string
	Count  int64
}

// RecentSaleResult proyección resumida de una venta para el dashboard.
type RecentSaleResult struct {
	ID            int64
	Total         decimal.Decimal
	PaymentMethod string
	CreatedAt     time.Time
	ItemCount     int64
}

// ReportRepository consultas de solo lectura para reportes y dashboard.
// Solo considera ventas en estado completed de la tienda indicada.
type ReportRepository interface {
	// GetSalesTotals devuelve cantidad de ventas e ingreso total del período.
	GetSalesTotals(ctx context.Context, tenantID int64, start, end time.Time) (count int64, revenue decimal.Decimal, err error)
	// GetTopProducts acumula cantidad e ingreso por producto, descendente por
	// cantidad; empates resueltos por orden de primera aparición.
	GetTopProducts(ctx context.Context, tenantID int64, start, end time.Time, limit int) ([]TopProductResult, error)
	// GetPaymentMethodCounts agrupa ventas del período por método de pago;
	// el método vacío se agrupa como "unknown".
	GetPaymentMethodCounts(ctx context.Context, tenantID int64, start, end time.Time) ([]PaymentMethodCount, error)
	// GetRecentSales devuelve las últimas ventas del período (descendente por fecha).
	GetRecentSales(ctx context.Context, tenantID int64, start, end time.Time, limit int) ([]RecentSaleResult, error)
	// CountLowStock cuenta productos con stock bajo su umbral (o el umbral por defecto).
	CountLowStock(ctx context.Context, tenantID int64) (int64, error)
}
