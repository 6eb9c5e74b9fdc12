package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardRepository consultas read-only de agregación para el dashboard.
// Opera sobre el conjunto de negocios accesibles al usuario; las sumas y
// conteos se hacen en SQL, no recorriendo entidades en memoria.
type DashboardRepository interface {
	// GetRevenue suma el total de ventas completadas en el rango [start, end].
	GetRevenue(ctx context.Context, businessIDs []string, start, end time.Time) (decimal.Decimal, error)
	// CountCompletedSales cuenta todas las ventas completadas históricas.
	CountCompletedSales(ctx context.Context, businessIDs []string) (int64, error)
	// CountLowStock cuenta productos activos con stock <= threshold.
	CountLowStock(ctx context.Context, businessIDs []string, threshold int) (int64, error)
}
