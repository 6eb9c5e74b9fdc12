package sales

import (
	"context"
	"fmt"

	"github.com/tu-usuario/negocios-rp/internal/application/authz"
	"github.com/tu-usuario/negocios-rp/internal/domain"
	"github.com/tu-usuario/negocios-rp/internal/domain/repository"
)

// PDFUseCase genera la representación descargable (PDF) de una factura.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	saleRepo     repository.SaleRepository
	businessRepo repository.BusinessRepository
	gate         *authz.Gate
	generator    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	saleRepo repository.SaleRepository,
	businessRepo repository.BusinessRepository,
	gate *authz.Gate,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		saleRepo:     saleRepo,
		businessRepo: businessRepo,
		gate:         gate,
		generator:    generator,
	}
}

// DownloadInvoicePDF carga factura, venta, líneas y negocio, verifica que el
// caller es miembro y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la factura o su venta no existen.
//   - domain.ErrForbidden       si el caller no es miembro del negocio.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, userID, invoiceID string) (pdfBytes []byte, filename string, err error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if invoice == nil {
		return nil, "", domain.ErrNotFound
	}
	business, err := uc.gate.Authorize(userID, invoice.BusinessID, authz.LevelMember)
	if err != nil {
		return nil, "", err
	}
	sale, err := uc.saleRepo.GetByID(invoice.SaleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(sale.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, invoice, business, sale, items)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar documento: %w", err)
	}
	return pdfBytes, invoice.Number + ".pdf", nil
}
