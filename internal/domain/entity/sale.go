package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatusCompleted único estado que produce el procesador de ventas.
const SaleStatusCompleted = "completed"

// PaymentUnknown agrupa ventas sin método de pago reconocible en los reportes.
const PaymentUnknown = "unknown"

// Sale representa una venta registrada. Es inmutable una vez creada:
// no existe camino de actualización ni borrado.
type Sale struct {
	ID            int64
	TenantID      int64
	UserID        int64
	Receipt       string // número de recibo (uuid), referencia imprimible
	Items         []SaleItem
	Total         decimal.Decimal
	PaymentMethod string
	CashReceived  *decimal.Decimal
	CashChange    *decimal.Decimal
	Status        string // completed
	Notes         string
	CreatedAt     time.Time
}

// SaleItem es una línea de venta: snapshot del producto al momento de vender
// (nombre y precio cobrado, que puede diferir del precio vigente del catálogo).
type SaleItem struct {
	ID          int64
	SaleID      int64
	ProductID   int64
	ProductName string
	Price       decimal.Decimal
	Quantity    int64
}
