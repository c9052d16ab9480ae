package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes y dashboard.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetSalesTotals devuelve cantidad de ventas e ingreso total del período.
// Usa COALESCE para devolver cero si no hay filas (período sin ventas).
func (r *ReportRepo) GetSalesTotals(
	ctx context.Context,
	tenantID int64,
	start, end time.Time,
) (count int64, revenue decimal.Decimal, err error) {
	const query = `
	SELECT COUNT(*), COALESCE(SUM(total), 0)
	FROM sales
	WHERE tenant_id = $1 AND status = $2 AND created_at BETWEEN $3 AND $4`

	err = r.pool.QueryRow(ctx, query, tenantID, entity.SaleStatusCompleted, start, end).
		Scan(&count, &revenue)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("reports.GetSalesTotals: %w", err)
	}
	return count, revenue, nil
}

// GetTopProducts acumula cantidad e ingreso por producto sobre las líneas de
// venta del período, descendente por cantidad. El desempate por MIN(si.id)
// reproduce el orden de primera aparición (orden estable).
func (r *ReportRepo) GetTopProducts(
	ctx context.Context,
	tenantID int64,
	start, end time.Time,
	limit int,
) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    si.product_id,
	    si.product_name,
	    SUM(si.quantity)::BIGINT            AS quantity,
	    SUM(si.price * si.quantity)         AS revenue,
	    MIN(si.id)                          AS first_seen
	FROM sales s
	JOIN sale_items si ON si.sale_id = s.id
	WHERE s.tenant_id = $1 AND s.status = $2 AND s.created_at BETWEEN $3 AND $4
	GROUP BY si.product_id, si.product_name
	ORDER BY quantity DESC, first_seen ASC
	LIMIT $5`

	rows, err := r.pool.Query(ctx, query, tenantID, entity.SaleStatusCompleted, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		var firstSeen int64
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Quantity, &row.Revenue, &firstSeen); err != nil {
			return nil, fmt.Errorf("reports.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetPaymentMethodCounts agrupa ventas por método de pago; el método vacío
// se consolida como "unknown".
func (r *ReportRepo) GetPaymentMethodCounts(
	ctx context.Context,
	tenantID int64,
	start, end time.Time,
) ([]repository.PaymentMethodCount, error) {
	const query = `
	SELECT COALESCE(NULLIF(payment_method, ''), 'unknown') AS method, COUNT(*)
	FROM sales
	WHERE tenant_id = $1 AND status = $2 AND created_at BETWEEN $3 AND $4
	GROUP BY 1
	ORDER BY 2 DESC`

	rows, err := r.pool.Query(ctx, query, tenantID, entity.SaleStatusCompleted, start, end)
	if err != nil {
		return nil, fmt.Errorf("reports.GetPaymentMethodCounts: %w", err)
	}
	defer rows.Close()

	var results []repository.PaymentMethodCount
	for rows.Next() {
		var row repository.PaymentMethodCount
		if err := rows.Scan(&row.Method, &row.Count); err != nil {
			return nil, fmt.Errorf("reports.GetPaymentMethodCounts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetRecentSales devuelve las últimas ventas del período con su conteo de líneas.
func (r *ReportRepo) GetRecentSales(
	ctx context.Context,
	tenantID int64,
	start, end time.Time,
	limit int,
) ([]repository.RecentSaleResult, error) {
	const query = `
	SELECT
	    s.id,
	    s.total,
	    s.payment_method,
	    s.created_at,
	    (SELECT COUNT(*) FROM sale_items si WHERE si.sale_id = s.id) AS item_count
	FROM sales s
	WHERE s.tenant_id = $1 AND s.status = $2 AND s.created_at BETWEEN $3 AND $4
	ORDER BY s.created_at DESC, s.id DESC
	LIMIT $5`

	rows, err := r.pool.Query(ctx, query, tenantID, entity.SaleStatusCompleted, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetRecentSales: %w", err)
	}
	defer rows.Close()

	var results []repository.RecentSaleResult
	for rows.Next() {
		var row repository.RecentSaleResult
		if err := rows.Scan(&row.ID, &row.Total, &row.PaymentMethod, &row.CreatedAt, &row.ItemCount); err != nil {
			return nil, fmt.Errorf("reports.GetRecentSales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CountLowStock cuenta productos bajo su umbral de alerta (o el umbral por defecto).
func (r *ReportRepo) CountLowStock(ctx context.Context, tenantID int64) (int64, error) {
	const query = `
	SELECT COUNT(*)
	FROM products
	WHERE tenant_id = $1 AND stock < COALESCE(low_stock_alert, $2)`

	var count int64
	err := r.pool.QueryRow(ctx, query, tenantID, entity.DefaultLowStockAlert).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("reports.CountLowStock: %w", err)
	}
	return count, nil
}
