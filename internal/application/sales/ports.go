package sales

import (
	"context"

	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repos atados a una misma transacción: la venta y el
// descuento de stock se confirman o revierten juntos. Lo implementa
// postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReceiptGenerator genera el recibo imprimible de una venta.
// Lo implementa pdf.ReceiptGenerator (Maroto).
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, tenant *entity.Tenant) ([]byte, error)
}
