package dto

import "time"

// UpdateInvoiceStatusRequest entrada de PATCH /api/invoices/:id.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"` // pending | paid | cancelled
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID         string     `json:"id"`
	SaleID     string     `json:"sale_id"`
	BusinessID string     `json:"business_id"`
	Number     string     `json:"number"`
	Status     string     `json:"status"`
	IssueDate  time.Time  `json:"issue_date"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// InvoiceListResponse lista paginada de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
