package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/irelec-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el tablero.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetBillingTotals cuenta clientes y facturas y suma los importes facturados.
func (r *AnalyticsRepo) GetBillingTotals(ctx context.Context) (repository.BillingTotals, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM customers)              AS customer_count,
	    (SELECT COUNT(*) FROM invoices)               AS invoice_count,
	    (SELECT COALESCE(SUM(amount), 0) FROM invoices) AS total_revenue`

	var t repository.BillingTotals
	if err := r.pool.QueryRow(ctx, query).Scan(&t.CustomerCount, &t.InvoiceCount, &t.TotalRevenue); err != nil {
		return repository.BillingTotals{}, fmt.Errorf("analytics.GetBillingTotals: %w", err)
	}
	return t, nil
}
