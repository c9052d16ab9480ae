package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
// Las ventas son inmutables: solo INSERT y SELECT.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, tenant_id, user_id, receipt, total, payment_method, cash_received, cash_change, status, notes, created_at`

// Create inserta la cabecera y sus líneas; asigna sale.ID y los IDs de las líneas.
// Pensado para correr dentro de la transacción del TxRunner.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (tenant_id, user_id, receipt, total, payment_method, cash_received, cash_change, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		sale.TenantID, sale.UserID, sale.Receipt, sale.Total, sale.PaymentMethod,
		sale.CashReceived, sale.CashChange, sale.Status, sale.Notes, sale.CreatedAt,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for i := range sale.Items {
		item := &sale.Items[i]
		item.SaleID = sale.ID
		err := r.q.QueryRow(context.Background(),
			`INSERT INTO sale_items (sale_id, product_id, product_name, price, quantity)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			item.SaleID, item.ProductID, item.ProductName, item.Price, item.Quantity,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta de la tienda con sus líneas. Devuelve nil si no existe.
func (r *SaleRepo) GetByID(tenantID, id int64) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE tenant_id = $1 AND id = $2`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, tenantID, id).Scan(
		&s.ID, &s.TenantID, &s.UserID, &s.Receipt, &s.Total, &s.PaymentMethod,
		&s.CashReceived, &s.CashChange, &s.Status, &s.Notes, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.itemsFor([]int64{s.ID})
	if err != nil {
		return nil, err
	}
	s.Items = items[s.ID]
	return &s, nil
}

// ListByRange devuelve las ventas completadas de la tienda en [start, end],
// con sus líneas, en orden de creación.
func (r *SaleRepo) ListByRange(tenantID int64, start, end time.Time) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + `
		FROM sales
		WHERE tenant_id = $1 AND status = $2 AND created_at BETWEEN $3 AND $4
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, tenantID, entity.SaleStatusCompleted, start, end)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	var ids []int64
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.TenantID, &s.UserID, &s.Receipt, &s.Total, &s.PaymentMethod,
			&s.CashReceived, &s.CashChange, &s.Status, &s.Notes, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	items, err := r.itemsFor(ids)
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		s.Items = items[s.ID]
	}
	return list, nil
}

// itemsFor carga las líneas de un conjunto de ventas agrupadas por sale_id.
func (r *SaleRepo) itemsFor(saleIDs []int64) (map[int64][]entity.SaleItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, sale_id, product_id, product_name, price, quantity
		 FROM sale_items WHERE sale_id = ANY($1) ORDER BY id`,
		saleIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	items := make(map[int64][]entity.SaleItem, len(saleIDs))
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.ProductName, &it.Price, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items[it.SaleID] = append(items[it.SaleID], it)
	}
	return items, rows.Err()
}
