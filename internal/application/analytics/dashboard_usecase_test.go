package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/negocios-rp/internal/domain/entity"
)

type stubDashboardRepo struct {
	revenue        decimal.Decimal
	completedSales int64
	lowStock       int64

	gotIDs       []string
	gotStart     time.Time
	gotEnd       time.Time
	gotThreshold int
}

func (r *stubDashboardRepo) GetRevenue(_ context.Context, ids []string, start, end time.Time) (decimal.Decimal, error) {
	r.gotIDs, r.gotStart, r.gotEnd = ids, start, end
	return r.revenue, nil
}

func (r *stubDashboardRepo) CountCompletedSales(_ context.Context, ids []string) (int64, error) {
	return r.completedSales, nil
}

func (r *stubDashboardRepo) CountLowStock(_ context.Context, ids []string, threshold int) (int64, error) {
	r.gotThreshold = threshold
	return r.lowStock, nil
}

type stubBusinessRepo struct {
	accessible []*entity.Business
}

func (r *stubBusinessRepo) Create(*entity.Business) error { return nil }
func (r *stubBusinessRepo) GetByID(string) (*entity.Business, error) { return nil, nil }
func (r *stubBusinessRepo) GetByAPIKey(string) (*entity.Business, error) { return nil, nil }
func (r *stubBusinessRepo) Update(*entity.Business) error { return nil }
func (r *stubBusinessRepo) UpdateAPIKey(string, string) error { return nil }
func (r *stubBusinessRepo) ListAccessibleByUser(string) ([]*entity.Business, error) {
	return r.accessible, nil
}
func (r *stubBusinessRepo) Delete(string) error { return nil }

func TestDashboard_AgregaMetricasDelDia(t *testing.T) {
	dashRepo := &stubDashboardRepo{
		revenue:        decimal.RequireFromString("1234.567"),
		completedSales: 42,
		lowStock:       3,
	}
	bizRepo := &stubBusinessRepo{accessible: []*entity.Business{
		{ID: "biz-1"}, {ID: "biz-2"},
	}}
	uc := NewDashboardUseCase(dashRepo, bizRepo, 5)

	out, err := uc.GetStats(context.Background(), "user-1")
	require.NoError(t, err)

	assert.True(t, out.TodayRevenue.Equal(decimal.RequireFromString("1234.57")),
		"los ingresos se redondean a 2 decimales, obtuvo %s", out.TodayRevenue)
	assert.Equal(t, int64(42), out.CompletedSales)
	assert.Equal(t, int64(3), out.LowStockCount)
	assert.Equal(t, 2, out.BusinessCount)

	// El rango de ingresos cubre el día local completo y solo los negocios accesibles.
	assert.Equal(t, []string{"biz-1", "biz-2"}, dashRepo.gotIDs)
	assert.Equal(t, 0, dashRepo.gotStart.Hour())
	assert.Equal(t, 23, dashRepo.gotEnd.Hour())
	assert.Equal(t, dashRepo.gotStart.Day(), dashRepo.gotEnd.Day())
	assert.Equal(t, 5, dashRepo.gotThreshold)
}

func TestDashboard_SinNegociosDevuelveCeros(t *testing.T) {
	uc := NewDashboardUseCase(&stubDashboardRepo{}, &stubBusinessRepo{}, 5)

	out, err := uc.GetStats(context.Background(), "user-sin-negocios")
	require.NoError(t, err)

	assert.True(t, out.TodayRevenue.IsZero())
	assert.Zero(t, out.CompletedSales)
	assert.Zero(t, out.LowStockCount)
	assert.Zero(t, out.BusinessCount)
}
