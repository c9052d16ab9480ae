package repository

import (
	"time"

	"github.com/jhoicas/ventapos-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Las ventas son inmutables: no hay Update ni Delete.
type SaleRepository interface {
	// Create inserta la cabecera y sus líneas; asigna sale.ID y los IDs de las líneas.
	Create(sale *entity.Sale) error
	GetByID(tenantID, id int64) (*entity.Sale, error)
	// ListByRange devuelve las ventas completadas de la tienda cuyo
	// created_at cae en [start, end], con sus líneas, en orden de creación.
	ListByRange(tenantID int64, start, end time.Time) ([]*entity.Sale, error)
}
