// Package analytics contiene el caso de uso del tablero de facturación.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/irelec-api/internal/application/dto"
	"github.com/jhoicas/irelec-api/internal/domain/entity"
	"github.com/jhoicas/irelec-api/internal/domain/repository"
)

const dashboardRecentInvoices = 5 // facturas en el widget de actividad reciente

// DashboardUseCase genera el resumen global del registro y del libro de facturas.
//
// Fuente de datos: AnalyticsRepository (totales) e InvoiceRepository (actividad reciente).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	invoiceRepo   repository.InvoiceRepository
	currency      string
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	invoiceRepo repository.InvoiceRepository,
	currency string,
) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, invoiceRepo: invoiceRepo, currency: currency}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Dos consultas en paralelo:
//  1. GetBillingTotals          → clientes, facturas, ingresos
//  2. List(limit 5)             → actividad reciente
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type totalsResult struct {
		totals repository.BillingTotals
		err    error
	}
	type recentResult struct {
		list []*entity.InvoiceView
		err  error
	}

	totalsCh := make(chan totalsResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		t, err := uc.analyticsRepo.GetBillingTotals(ctx)
		totalsCh <- totalsResult{t, err}
	}()
	go func() {
		l, err := uc.invoiceRepo.List(ctx, repository.InvoiceFilter{Limit: dashboardRecentInvoices})
		recentCh <- recentResult{l, err}
	}()

	totals := <-totalsCh
	recent := <-recentCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales: %w", totals.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: actividad reciente: %w", recent.err)
	}

	out := &dto.DashboardSummaryDTO{
		TotalCustomers: totals.totals.CustomerCount,
		TotalInvoices:  totals.totals.InvoiceCount,
		TotalRevenue:   totals.totals.TotalRevenue.Round(2),
		Currency:       uc.currency,
		RecentInvoices: make([]dto.RecentInvoiceDTO, 0, len(recent.list)),
	}
	for _, v := range recent.list {
		out.RecentInvoices = append(out.RecentInvoices, dto.RecentInvoiceDTO{
			Number:       v.Number,
			CustomerName: v.CustomerName,
			Date:         v.CreatedAt.Format(dto.DateTimeLayout),
			Amount:       v.Amount,
		})
	}
	return out, nil
}
