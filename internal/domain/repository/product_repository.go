package repository

import "github.com/jhoicas/ventapos-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Toda lectura filtra por tenantID: no existe aislamiento estructural por tienda.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(tenantID, id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByTenant(tenantID int64) ([]*entity.Product, error)
	// Search busca por barcode exacto, o por substring (plegado: sin
	// mayúsculas ni acentos) contra nombre o barcode. limit acota resultados.
	Search(tenantID int64, foldedQuery, barcode string, limit int) ([]*entity.Product, error)
	// DeductStock descuenta qty del stock del producto (tenantID, productID)
	// recortando en cero: el stock nunca queda negativo. Devuelve false si el
	// producto no existe para esa tienda; el llamador decide si eso es error.
	DeductStock(tenantID, productID, qty int64) (bool, error)
}
