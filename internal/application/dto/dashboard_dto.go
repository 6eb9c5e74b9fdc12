package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO métricas del día para los negocios accesibles al usuario.
type DashboardStatsDTO struct {
	TodayRevenue   decimal.Decimal `json:"today_revenue"`
	CompletedSales int64           `json:"completed_sales"`
	LowStockCount  int64           `json:"low_stock_count"`
	BusinessCount  int             `json:"business_count"`
}
