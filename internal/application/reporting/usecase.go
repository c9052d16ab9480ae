// Package reporting contiene los casos de uso de reportes: ventas del día,
// estadísticas por rango de fechas y el resumen del dashboard.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

const (
	statsTopProducts    = 10 // productos en el ranking de stats
	overviewRecentSales = 10 // ventas recientes en el dashboard
)

// ReportingUseCase deriva las vistas agregadas escaneando la colección de
// ventas en cada petición (vía consultas read-only del ReportRepository).
type ReportingUseCase struct {
	reportRepo repository.ReportRepository
	saleRepo   repository.SaleRepository
}

// NewReportingUseCase construye el caso de uso.
func NewReportingUseCase(reportRepo repository.ReportRepository, saleRepo repository.SaleRepository) *ReportingUseCase {
	return &ReportingUseCase{reportRepo: reportRepo, saleRepo: saleRepo}
}

// TodaysSales devuelve las ventas completadas cuya fecha de creación cae en
// el día actual del servidor.
func (uc *ReportingUseCase) TodaysSales(tenantID int64) (*dto.SaleListResponse, error) {
	start, end := dayRange(time.Now())
	sales, err := uc.saleRepo.ListByRange(tenantID, start, end)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, toSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items, Total: len(items)}, nil
}

// Stats calcula totales, ticket promedio y top de productos para el rango
// dado. Las cotas son inclusivas: endDate se trata como fin de día. Sin cotas,
// considera todo el historial de la tienda.
func (uc *ReportingUseCase) Stats(ctx context.Context, tenantID int64, startDate, endDate *time.Time) (*dto.StatsResponse, error) {
	start := time.Unix(0, 0)
	if startDate != nil {
		s, _ := dayRange(*startDate)
		start = s
	}
	end := time.Now()
	if endDate != nil {
		_, e := dayRange(*endDate)
		end = e
	}

	count, revenue, err := uc.reportRepo.GetSalesTotals(ctx, tenantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("stats: totales: %w", err)
	}
	top, err := uc.reportRepo.GetTopProducts(ctx, tenantID, start, end, statsTopProducts)
	if err != nil {
		return nil, fmt.Errorf("stats: top productos: %w", err)
	}

	out := &dto.StatsResponse{
		TotalSales:    count,
		TotalRevenue:  revenue,
		AverageTicket: averageTicket(count, revenue),
		TopProducts:   make([]dto.TopProductDTO, 0, len(top)),
	}
	for _, t := range top {
		out.TopProducts = append(out.TopProducts, dto.TopProductDTO{
			ProductID:   t.ProductID,
			ProductName: t.ProductName,
			Quantity:    t.Quantity,
			Revenue:     t.Revenue,
		})
	}
	return out, nil
}

// Overview arma el resumen del dashboard, acotado al día actual.
//
// Cuatro consultas en paralelo:
//  1. GetSalesTotals(hoy)         → TotalSales + TotalRevenue
//  2. CountLowStock               → LowStockCount
//  3. GetPaymentMethodCounts(hoy) → PaymentMethods
//  4. GetRecentSales(hoy, 10)     → RecentSales
func (uc *ReportingUseCase) Overview(ctx context.Context, tenantID int64) (*dto.OverviewResponse, error) {
	start, end := dayRange(time.Now())

	type totalsResult struct {
		count   int64
		revenue decimal.Decimal
		err     error
	}
	type lowStockResult struct {
		count int64
		err   error
	}
	type paymentsResult struct {
		counts []repository.PaymentMethodCount
		err    error
	}
	type recentResult struct {
		sales []repository.RecentSaleResult
		err   error
	}

	totalsCh := make(chan totalsResult, 1)
	lowCh := make(chan lowStockResult, 1)
	payCh := make(chan paymentsResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		count, revenue, err := uc.reportRepo.GetSalesTotals(ctx, tenantID, start, end)
		totalsCh <- totalsResult{count, revenue, err}
	}()
	go func() {
		count, err := uc.reportRepo.CountLowStock(ctx, tenantID)
		lowCh <- lowStockResult{count, err}
	}()
	go func() {
		counts, err := uc.reportRepo.GetPaymentMethodCounts(ctx, tenantID, start, end)
		payCh <- paymentsResult{counts, err}
	}()
	go func() {
		sales, err := uc.reportRepo.GetRecentSales(ctx, tenantID, start, end, overviewRecentSales)
		recentCh <- recentResult{sales, err}
	}()

	totals := <-totalsCh
	low := <-lowCh
	pay := <-payCh
	recent := <-recentCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales de hoy: %w", totals.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}
	if pay.err != nil {
		return nil, fmt.Errorf("dashboard: métodos de pago: %w", pay.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: ventas recientes: %w", recent.err)
	}

	methods := make(map[string]int64, len(pay.counts))
	for _, pm := range pay.counts {
		method := pm.Method
		if method == "" {
			method = entity.PaymentUnknown
		}
		methods[method] += pm.Count
	}

	recentOut := make([]dto.SaleSummaryDTO, 0, len(recent.sales))
	for _, r := range recent.sales {
		recentOut = append(recentOut, dto.SaleSummaryDTO{
			ID:            r.ID,
			Total:         r.Total,
			PaymentMethod: r.PaymentMethod,
			CreatedAt:     r.CreatedAt,
			ItemCount:     r.ItemCount,
		})
	}

	return &dto.OverviewResponse{
		TotalSales:     totals.count,
		TotalRevenue:   totals.revenue,
		AverageTicket:  averageTicket(totals.count, totals.revenue),
		LowStockCount:  low.count,
		PaymentMethods: methods,
		RecentSales:    recentOut,
	}, nil
}

// averageTicket es ingreso/ventas, redondeado a 2 decimales; 0 si no hay ventas.
func averageTicket(count int64, revenue decimal.Decimal) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return revenue.DivRound(decimal.NewFromInt(count), 2)
}

// dayRange devuelve [00:00:00.000, 23:59:59.999...] del día de t.
func dayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
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
