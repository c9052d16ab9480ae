package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
	"github.com/jhoicas/ventapos-api/pkg/normalize"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
// Mantiene la columna search_name (nombre plegado) para búsqueda sin acentos.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, tenant_id, barcode, name, price, cost, stock, category, low_stock_alert, created_at, updated_at`

// Create persiste un producto nuevo y asigna su ID serial.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (tenant_id, barcode, name, search_name, price, cost, stock, category, low_stock_alert, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.TenantID, product.Barcode, product.Name, normalize.Fold(product.Name),
		product.Price, product.Cost, product.Stock, product.Category,
		product.LowStockAlert, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por (tienda, id). Devuelve nil si no existe para esa tienda.
func (r *ProductRepo) GetByID(tenantID, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE tenant_id = $1 AND id = $2`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, tenantID, id).Scan(
		&p.ID, &p.TenantID, &p.Barcode, &p.Name, &p.Price, &p.Cost,
		&p.Stock, &p.Category, &p.LowStockAlert, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza el producto completo (el caso de uso ya hizo el merge) y
// refresca search_name por si cambió el nombre.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET barcode = $3, name = $4, search_name = $5, price = $6, cost = $7,
		    stock = $8, category = $9, low_stock_alert = $10, updated_at = $11
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		product.TenantID, product.ID, product.Barcode, product.Name, normalize.Fold(product.Name),
		product.Price, product.Cost, product.Stock, product.Category,
		product.LowStockAlert, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// ListByTenant lista todos los productos de la tienda en orden de almacenamiento.
func (r *ProductRepo) ListByTenant(tenantID int64) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE tenant_id = $1 ORDER BY id`
	return r.list(query, tenantID)
}

// Search aplica los filtros del catálogo con tope de resultados:
// barcode manda (match exacto), si no foldedQuery como substring contra el
// nombre plegado o el barcode, si no listado acotado.
func (r *ProductRepo) Search(tenantID int64, foldedQuery, barcode string, limit int) ([]*entity.Product, error) {
	switch {
	case barcode != "":
		query := `SELECT ` + productColumns + `
			FROM products WHERE tenant_id = $1 AND barcode = $2 ORDER BY id LIMIT $3`
		return r.list(query, tenantID, barcode, limit)
	case foldedQuery != "":
		query := `SELECT ` + productColumns + `
			FROM products
			WHERE tenant_id = $1
			  AND (search_name LIKE '%' || $2 || '%' OR lower(barcode) LIKE '%' || $2 || '%')
			ORDER BY id LIMIT $3`
		return r.list(query, tenantID, foldedQuery, limit)
	default:
		query := `SELECT ` + productColumns + ` FROM products WHERE tenant_id = $1 ORDER BY id LIMIT $2`
		return r.list(query, tenantID, limit)
	}
}

// DeductStock descuenta qty recortando en cero dentro del mismo UPDATE, de modo
// que dos ventas concurrentes nunca dejan stock negativo. Devuelve false si el
// producto no existe para esa tienda.
func (r *ProductRepo) DeductStock(tenantID, productID, qty int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = GREATEST(stock - $3, 0), updated_at = now()
		 WHERE tenant_id = $1 AND id = $2`,
		tenantID, productID, qty,
	)
	if err != nil {
		return false, fmt.Errorf("deduct stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.TenantID, &p.Barcode, &p.Name, &p.Price, &p.Cost,
			&p.Stock, &p.Category, &p.LowStockAlert, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
