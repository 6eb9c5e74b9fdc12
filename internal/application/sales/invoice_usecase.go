package sales

import (
	"time"

	"github.com/tu-usuario/negocios-rp/internal/application/authz"
	"github.com/tu-usuario/negocios-rp/internal/application/dto"
	"github.com/tu-usuario/negocios-rp/internal/domain"
	"github.com/tu-usuario/negocios-rp/internal/domain/entity"
	"github.com/tu-usuario/negocios-rp/internal/domain/repository"
)

// InvoiceUseCase lecturas y transiciones de estado de facturas.
// Las facturas nacen junto a su venta; aquí solo se consultan y se transiciona
// su estado. Cancelar una factura NO repone el stock de la venta: las ventas
// son registros de auditoría inmutables.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
	gate *authz.Gate
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, gate *authz.Gate) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, gate: gate}
}

// GetByID obtiene una factura (miembro del negocio).
func (uc *InvoiceUseCase) GetByID(userID, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.loadAuthorized(userID, id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// ListByBusiness lista facturas de un negocio (miembro) con paginación.
func (uc *InvoiceUseCase) ListByBusiness(userID, businessID string, limit, offset int) (*dto.InvoiceListResponse, error) {
	if _, err := uc.gate.Authorize(userID, businessID, authz.LevelMember); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByBusiness(businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus transiciona el estado de una factura (miembro del negocio).
// Pasar a "paid" estampa paid_at solo la primera vez; transiciones repetidas a
// "paid" no mueven el timestamp. Volver a "pending" o "cancelled" lo conserva
// como rastro histórico.
func (uc *InvoiceUseCase) UpdateStatus(userID, id string, in dto.UpdateInvoiceStatusRequest) (*dto.InvoiceResponse, error) {
	if !entity.ValidInvoiceStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.loadAuthorized(userID, id)
	if err != nil {
		return nil, err
	}
	invoice.Status = in.Status
	if in.Status == entity.InvoiceStatusPaid && invoice.PaidAt == nil {
		now := time.Now()
		invoice.PaidAt = &now
	}
	invoice.UpdatedAt = time.Now()
	if err := uc.repo.UpdateStatus(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

func (uc *InvoiceUseCase) loadAuthorized(userID, id string) (*entity.Invoice, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.gate.Authorize(userID, invoice.BusinessID, authz.LevelMember); err != nil {
		return nil, err
	}
	return invoice, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:         inv.ID,
		SaleID:     inv.SaleID,
		BusinessID: inv.BusinessID,
		Number:     inv.Number,
		Status:     inv.Status,
		IssueDate:  inv.IssueDate,
		DueDate:    inv.DueDate,
		PaidAt:     inv.PaidAt,
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
}
