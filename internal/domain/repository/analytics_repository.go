package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// BillingTotals agregados globales del registro y del libro de facturas.
type BillingTotals struct {
	CustomerCount int
	InvoiceCount  int
	TotalRevenue  decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para el tablero.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetBillingTotals devuelve número de clientes, de facturas y la suma de importes.
	// Usa cero cuando no hay facturas.
	GetBillingTotals(ctx context.Context) (BillingTotals, error)
}
