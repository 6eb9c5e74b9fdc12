package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusPending   = "pending"
	SaleStatusCompleted = "completed"
	SaleStatusCancelled = "cancelled"
)

// Origen de una venta.
const (
	SaleSourceWeb  = "web"
	SaleSourceGame = "game"
)

// Sale registro inmutable de una venta. TotalAmount debe ser la suma de los
// TotalPrice de sus líneas; lo compone el orquestador, no un constraint de BD.
type Sale struct {
	ID          string
	BusinessID  string
	SellerID    string
	BuyerName   string
	BuyerInfo   string
	TotalAmount decimal.Decimal
	Status      string // pending, completed, cancelled
	Source      string // web, game
	CreatedAt   time.Time
}

// SaleItem línea de venta. ProductName y UnitPrice son snapshots tomados en el
// momento de la venta: ediciones posteriores del producto no los alteran.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal // Quantity × UnitPrice
}
