package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo vendible de un negocio.
// BusinessID es inmutable tras la creación; Stock solo lo mutan la creación de
// ventas (decremento condicional en transacción) y la edición manual.
type Product struct {
	ID          string
	BusinessID  string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, no negativo
	Stock       int
	Category    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
