package dto

import "github.com/shopspring/decimal"

// GameSaleRequest entrada de POST /api/game/sales. Autenticada por la api key
// del negocio (secreto compartido en el body, sin sesión de usuario).
// SellerID es opcional: si viene, debe ser el dueño o un empleado del negocio.
type GameSaleRequest struct {
	APIKey    string            `json:"api_key"`
	BuyerName string            `json:"buyer_name"`
	BuyerInfo string            `json:"buyer_info"`
	SellerID  string            `json:"seller_id"`
	Items     []SaleItemRequest `json:"items"`
}

// GameSaleResponse respuesta compacta para el servidor del juego.
type GameSaleResponse struct {
	Success       bool            `json:"success"`
	SaleID        string          `json:"sale_id"`
	InvoiceNumber string          `json:"invoice_number"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}
