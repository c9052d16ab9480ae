package reporting_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventapos-api/internal/application/reporting"
	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	count    int64
	revenue  decimal.Decimal
	top      []repository.TopProductResult
	payments []repository.PaymentMethodCount
	recent   []repository.RecentSaleResult
	lowStock int64

	// capturados para verificar las cotas del rango
	lastStart time.Time
	lastEnd   time.Time
}

func (r *fakeReportRepo) GetSalesTotals(_ context.Context, _ int64, start, end time.Time) (int64, decimal.Decimal, error) {
	r.lastStart, r.lastEnd = start, end
	return r.count, r.revenue, nil
}

func (r *fakeReportRepo) GetTopProducts(_ context.Context, _ int64, _, _ time.Time, limit int) ([]repository.TopProductResult, error) {
	if len(r.top) > limit {
		return r.top[:limit], nil
	}
	return r.top, nil
}

func (r *fakeReportRepo) GetPaymentMethodCounts(_ context.Context, _ int64, _, _ time.Time) ([]repository.PaymentMethodCount, error) {
	return r.payments, nil
}

func (r *fakeReportRepo) GetRecentSales(_ context.Context, _ int64, _, _ time.Time, limit int) ([]repository.RecentSaleResult, error) {
	if len(r.recent) > limit {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}

func (r *fakeReportRepo) CountLowStock(_ context.Context, _ int64) (int64, error) {
	return r.lowStock, nil
}

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(*entity.Sale) error { return nil }
func (r *fakeSaleRepo) GetByID(_, _ int64) (*entity.Sale, error) {
	return nil, nil
}
func (r *fakeSaleRepo) ListByRange(tenantID int64, start, end time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.TenantID == tenantID && !s.CreatedAt.Before(start) && !s.CreatedAt.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// TodaysSales
// ──────────────────────────────────────────────────────────────────────────────

func TestTodaysSales_SoloIncluyeVentasDeHoy(t *testing.T) {
	now := time.Now()
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		{ID: 1, TenantID: 1, Total: dec("10"), CreatedAt: now},
		{ID: 2, TenantID: 1, Total: dec("20"), CreatedAt: now.Add(-48 * time.Hour)},
		{ID: 3, TenantID: 2, Total: dec("30"), CreatedAt: now},
	}}
	uc := reporting.NewReportingUseCase(&fakeReportRepo{}, saleRepo)

	out, err := uc.TodaysSales(1)
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, int64(1), out.Items[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stats
// ──────────────────────────────────────────────────────────────────────────────

func TestStats_TicketPromedioRedondeado(t *testing.T) {
	repo := &fakeReportRepo{count: 3, revenue: dec("10.00")}
	uc := reporting.NewReportingUseCase(repo, &fakeSaleRepo{})

	out, err := uc.Stats(context.Background(), 1, nil, nil)
	require.NoError(t, err)

	// 10/3 = 3.333… → 3.33 a dos decimales.
	assert.True(t, out.AverageTicket.Equal(dec("3.33")),
		"ticket promedio esperado 3.33, obtenido %s", out.AverageTicket)
}

func TestStats_SinVentas_TicketPromedioCero(t *testing.T) {
	repo := &fakeReportRepo{count: 0, revenue: decimal.Zero}
	uc := reporting.NewReportingUseCase(repo, &fakeSaleRepo{})

	out, err := uc.Stats(context.Background(), 1, nil, nil)
	require.NoError(t, err)

	assert.True(t, out.AverageTicket.IsZero(), "sin ventas el promedio es 0, nunca división por cero")
	assert.Empty(t, out.TopProducts)
}

func TestStats_EndDateEsFinDeDiaInclusive(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := reporting.NewReportingUseCase(repo, &fakeSaleRepo{})

	day := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	_, err := uc.Stats(context.Background(), 1, &day, &day)
	require.NoError(t, err)

	assert.Equal(t, day, repo.lastStart)
	assert.Equal(t, 15, repo.lastEnd.Day(), "el fin de rango queda dentro del mismo día")
	assert.Equal(t, 23, repo.lastEnd.Hour(), "endDate se trata como fin de día")
}

func TestStats_SinCotas_CubreTodoElHistorial(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := reporting.NewReportingUseCase(repo, &fakeSaleRepo{})

	_, err := uc.Stats(context.Background(), 1, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, time.Unix(0, 0), repo.lastStart)
	assert.WithinDuration(t, time.Now(), repo.lastEnd, time.Minute)
}

func TestStats_TopProductsAcotadoADiez(t *testing.T) {
	repo := &fakeReportRepo{}
	for i := int64(1); i <= 15; i++ {
		repo.top = append(repo.top, repository.TopProductResult{
			ProductID: i, ProductName: "P", Quantity: 100 - i, Revenue: dec("1"),
		})
	}
	uc := reporting.NewReportingUseCase(repo, &fakeSaleRepo{})

	out, err := uc.Stats(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	assert.Len(t, out.TopProducts, 10)
}

// ──────────────────────────────────────────────────────────────────────────────
// Overview
// ──────────────────────────────────────────────────────────────────────────────

func TestOverview_ArmaElResumenCompleto(t *testing.T) {
	repo := &fakeReportRepo{
		count:    4,
		revenue:  dec("100.00"),
		lowStock: 2,
		payments: []repository.PaymentMethodCount{
			{Method: "cash", Count: 3},
			{Method: "card", Count: 1},
		},
		recent: []repository.RecentSaleResult{
			{ID: 9, Total: dec("12.50"), PaymentMethod: "cash", CreatedAt: time.Now(), ItemCount: 3},
		},
	}
	uc := reporting.NewReportingUseCase(repo, &fakeSaleRepo{})

	out, err := uc.Overview(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(4), out.TotalSales)
	assert.True(t, out.TotalRevenue.Equal(dec("100.00")))
	assert.True(t, out.AverageTicket.Equal(dec("25.00")))
	assert.Equal(t, int64(2), out.LowStockCount)
	assert.Equal(t, int64(3), out.PaymentMethods["cash"])
	assert.Equal(t, int64(1), out.PaymentMethods["card"])
	require.Len(t, out.RecentSales, 1)
	assert.Equal(t, int64(9), out.RecentSales[0].ID)
	assert.Equal(t, int64(3), out.RecentSales[0].ItemCount)
}

func TestOverview_MetodoDePagoVacio_SeAgrupaComoUnknown(t *testing.T) {
	repo := &fakeReportRepo{
		count:   2,
		revenue: dec("10"),
		payments: []repository.PaymentMethodCount{
			{Method: "", Count: 2},
		},
	}
	uc := reporting.NewReportingUseCase(repo, &fakeSaleRepo{})

	out, err := uc.Overview(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(2), out.PaymentMethods[entity.PaymentUnknown])
	_, exists := out.PaymentMethods[""]
	assert.False(t, exists, "la clave vacía no debe aparecer en la respuesta")
}

func TestOverview_SinDatos_EstructurasVaciasNoNulas(t *testing.T) {
	uc := reporting.NewReportingUseCase(&fakeReportRepo{}, &fakeSaleRepo{})

	out, err := uc.Overview(context.Background(), 1)
	require.NoError(t, err)

	assert.NotNil(t, out.PaymentMethods)
	assert.NotNil(t, out.RecentSales)
	assert.True(t, out.AverageTicket.IsZero())
}
