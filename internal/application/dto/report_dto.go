package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TopProductDTO acumulado de un producto en el ranking de ventas.
type TopProductDTO struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// StatsResponse salida de GET /api/sales/stats.
type StatsResponse struct {
	TotalSales    int64           `json:"totalSales"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	AverageTicket decimal.Decimal `json:"averageTicket"` // 0 cuando no hay ventas
	TopProducts   []TopProductDTO `json:"topProducts"`
}

// SaleSummaryDTO proyección resumida de una venta para el dashboard.
type SaleSummaryDTO struct {
	ID            int64           `json:"id"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	CreatedAt     time.Time       `json:"createdAt"`
	ItemCount     int64           `json:"itemCount"`
}

// OverviewResponse salida de GET /api/dashboard/overview, limitada al día actual.
type OverviewResponse struct {
	TotalSales     int64            `json:"totalSales"`
	TotalRevenue   decimal.Decimal  `json:"totalRevenue"`
	AverageTicket  decimal.Decimal  `json:"averageTicket"`
	LowStockCount  int64            `json:"lowStockCount"`
	PaymentMethods map[string]int64 `json:"paymentMethods"`
	RecentSales    []SaleSummaryDTO `json:"recentSales"`
}
