package repository

import "github.com/tu-usuario/negocios-rp/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	GetBySaleID(saleID string) (*entity.Invoice, error)
	// UpdateStatus persiste estado y paid_at de la factura.
	UpdateStatus(invoice *entity.Invoice) error
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Invoice, error)
}
