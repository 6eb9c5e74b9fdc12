package entity

import "time"

// Estados del ciclo de vida de una factura.
const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

// ValidInvoiceStatus verifica que el estado esté en la enumeración.
func ValidInvoiceStatus(s string) bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid || s == InvoiceStatusCancelled
}

// Invoice documento de cobro 1:1 con su venta, creado en la misma transacción.
// Number es único en todo el sistema. PaidAt se estampa la primera vez que el
// estado pasa a "paid" y no se sobreescribe en transiciones repetidas.
type Invoice struct {
	ID         string
	SaleID     string
	BusinessID string
	Number     string
	Status     string // pending, paid, cancelled
	IssueDate  time.Time
	DueDate    *time.Time
	PaidAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
