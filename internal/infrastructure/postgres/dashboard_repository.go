package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/negocios-rp/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el dashboard de negocios.
// Siempre opera sobre el pool: no participa en transacciones.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de agregaciones.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// GetRevenue suma el total de ventas completadas en el rango de fechas.
// COALESCE devuelve cero si el período no tiene ventas.
func (r *DashboardRepo) GetRevenue(ctx context.Context, businessIDs []string, start, end time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(total_amount), 0)
	FROM sales
	WHERE business_id = ANY($1)
	  AND status = 'completed'
	  AND created_at BETWEEN $2 AND $3`
	var revenue decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, businessIDs, start, end).Scan(&revenue); err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.GetRevenue: %w", err)
	}
	return revenue, nil
}

// CountCompletedSales cuenta todas las ventas completadas históricas.
func (r *DashboardRepo) CountCompletedSales(ctx context.Context, businessIDs []string) (int64, error) {
	const query = `
	SELECT COUNT(*)
	FROM sales
	WHERE business_id = ANY($1) AND status = 'completed'`
	var n int64
	if err := r.pool.QueryRow(ctx, query, businessIDs).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountCompletedSales: %w", err)
	}
	return n, nil
}

// CountLowStock cuenta productos activos con stock <= threshold.
func (r *DashboardRepo) CountLowStock(ctx context.Context, businessIDs []string, threshold int) (int64, error) {
	const query = `
	SELECT COUNT(*)
	FROM products
	WHERE business_id = ANY($1) AND active AND stock <= $2`
	var n int64
	if err := r.pool.QueryRow(ctx, query, businessIDs, threshold).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard.CountLowStock: %w", err)
	}
	return n, nil
}
