// Package sales implementa el registro transaccional de ventas: el único
// punto del sistema donde dos colecciones (ventas y productos) deben quedar
// consistentes entre sí.
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/domain"
	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

// SaleUseCase registra ventas y sirve su recibo.
//
// Políticas explícitas heredadas del negocio:
//   - El total se calcula con los precios enviados por el cliente; no se
//     releen del catálogo.
//   - El stock nunca queda negativo: vender más unidades de las disponibles
//     recorta el stock en cero y absorbe el déficit.
//   - Una línea cuyo producto ya no existe se registra como vendida pero no
//     afecta stock.
type SaleUseCase struct {
	txRunner   TxRunner
	saleRepo   repository.SaleRepository
	tenantRepo repository.TenantRepository
	receipts   ReceiptGenerator
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, tenantRepo repository.TenantRepository, receipts ReceiptGenerator) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo, tenantRepo: tenantRepo, receipts: receipts}
}

// Create valida la venta, calcula el total y persiste venta + descuentos de
// stock dentro de una sola transacción. Devuelve la venta tal como quedó
// almacenada, incluido el total calculado.
func (uc *SaleUseCase) Create(ctx context.Context, tenantID, userID int64, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentMethod == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	total := decimal.Zero
	items := make([]entity.SaleItem, 0, len(in.Items))
	for _, item := range in.Items {
		qty := decimal.NewFromInt(item.Quantity)
		total = total.Add(item.Price.Mul(qty))
		items = append(items, entity.SaleItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	sale := &entity.Sale{
		TenantID:      tenantID,
		UserID:        userID,
		Receipt:       uuid.New().String(),
		Items:         items,
		Total:         total,
		PaymentMethod: in.PaymentMethod,
		CashReceived:  in.CashReceived,
		CashChange:    in.CashChange,
		Status:        entity.SaleStatusCompleted,
		Notes:         in.Notes,
		CreatedAt:     time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, item := range sale.Items {
			// DeductStock recorta en cero dentro del UPDATE; un producto
			// inexistente devuelve found=false y la línea queda sin efecto
			// sobre inventario.
			if _, err := productRepo.DeductStock(tenantID, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale), nil
}

// GetByID devuelve una venta de la tienda con sus líneas.
func (uc *SaleUseCase) GetByID(tenantID, saleID int64) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(tenantID, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// Receipt genera el PDF del recibo de la venta.
func (uc *SaleUseCase) Receipt(ctx context.Context, tenantID, saleID int64) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(tenantID, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	tenant, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	return uc.receipts.GenerateReceiptPDF(ctx, sale, tenant)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
		})
	}
	return &dto.SaleResponse{
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
