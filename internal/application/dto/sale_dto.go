package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea solicitada: producto y cantidad. El precio nunca viene del cliente.
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateSaleRequest entrada de la ruta web autenticada POST /api/sales.
type CreateSaleRequest struct {
	BusinessID string            `json:"business_id"`
	BuyerName  string            `json:"buyer_name"`
	BuyerInfo  string            `json:"buyer_info"`
	Items      []SaleItemRequest `json:"items"`
}

// SaleItemResponse línea de venta con snapshots de nombre y precio.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// SaleResponse venta con sus líneas y su factura.
type SaleResponse struct {
	ID          string             `json:"id"`
	BusinessID  string             `json:"business_id"`
	SellerID    string             `json:"seller_id"`
	BuyerName   string             `json:"buyer_name"`
	BuyerInfo   string             `json:"buyer_info,omitempty"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Status      string             `json:"status"`
	Source      string             `json:"source"`
	CreatedAt   time.Time          `json:"created_at"`
	Items       []SaleItemResponse `json:"items"`
	Invoice     *InvoiceResponse   `json:"invoice,omitempty"`
}

// SaleListResponse lista paginada de ventas (sin líneas).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
