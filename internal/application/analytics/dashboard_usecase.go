// Package analytics contiene el agregador read-only del dashboard de negocios.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/negocios-rp/internal/application/dto"
	"github.com/tu-usuario/negocios-rp/internal/domain/repository"
)

// DashboardUseCase calcula las métricas del usuario sobre el conjunto de
// negocios que posee o donde trabaja.
//
// Fuente de datos: DashboardRepository (agregaciones SQL read-only); no se
// recorren entidades en memoria ni se cachea nada entre llamadas.
type DashboardUseCase struct {
	dashboardRepo     repository.DashboardRepository
	businessRepo      repository.BusinessRepository
	lowStockThreshold int
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository, businessRepo repository.BusinessRepository, lowStockThreshold int) *DashboardUseCase {
	return &DashboardUseCase{
		dashboardRepo:     dashboardRepo,
		businessRepo:      businessRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

// GetStats construye el DashboardStatsDTO para el usuario indicado.
//
// Tres consultas en paralelo sobre el conjunto de negocios accesibles:
//  1. GetRevenue(hoy)       → TodayRevenue (ventas completadas del día local)
//  2. CountCompletedSales   → CompletedSales (histórico)
//  3. CountLowStock         → LowStockCount (stock <= umbral)
func (uc *DashboardUseCase) GetStats(ctx context.Context, userID string) (*dto.DashboardStatsDTO, error) {
	businesses, err := uc.businessRepo.ListAccessibleByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: negocios accesibles: %w", err)
	}
	if len(businesses) == 0 {
		return &dto.DashboardStatsDTO{TodayRevenue: decimal.Zero}, nil
	}
	ids := make([]string, 0, len(businesses))
	for _, b := range businesses {
		ids = append(ids, b.ID)
	}

	// Hoy: 00:00:00.000 – 23:59:59.999 en hora local del servidor
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	type revenueResult struct {
		revenue decimal.Decimal
		err     error
	}
	type countResult struct {
		n   int64
		err error
	}

	revenueCh := make(chan revenueResult, 1)
	salesCh := make(chan countResult, 1)
	stockCh := make(chan countResult, 1)

	go func() {
		rev, err := uc.dashboardRepo.GetRevenue(ctx, ids, todayStart, todayEnd)
		revenueCh <- revenueResult{rev, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountCompletedSales(ctx, ids)
		salesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashboardRepo.CountLowStock(ctx, ids, uc.lowStockThreshold)
		stockCh <- countResult{n, err}
	}()

	revenue := <-revenueCh
	salesCount := <-salesCh
	lowStock := <-stockCh

	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos de hoy: %w", revenue.err)
	}
	if salesCount.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de ventas: %w", salesCount.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}

	return &dto.DashboardStatsDTO{
		TodayRevenue:   revenue.revenue.Round(2),
		CompletedSales: salesCount.n,
		LowStockCount:  lowStock.n,
		BusinessCount:  len(businesses),
	}, nil
}
