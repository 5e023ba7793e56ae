package sqlite

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jhoicas/irelec-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

type AnalyticsRepo struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// GetBillingTotals suma los importes en Go: SUM() de SQLite trabaja en coma flotante.
func (r *AnalyticsRepo) GetBillingTotals(ctx context.Context) (repository.BillingTotals, error) {
	db := r.db.WithContext(ctx)

	var customers int64
	if err := db.Model(&customerModel{}).Count(&customers).Error; err != nil {
		return repository.BillingTotals{}, fmt.Errorf("analytics.GetBillingTotals: %w", err)
	}
	var amounts []string
	if err := db.Model(&invoiceModel{}).Pluck("amount", &amounts).Error; err != nil {
		return repository.BillingTotals{}, fmt.Errorf("analytics.GetBillingTotals: %w", err)
	}

	total := decimal.Zero
	for _, s := range amounts {
		a, err := decimal.NewFromString(s)
		if err != nil {
			return repository.BillingTotals{}, fmt.Errorf("analytics.GetBillingTotals: importe %q: %w", s, err)
		}
		total = total.Add(a)
	}
	return repository.BillingTotals{
		CustomerCount: int(customers),
		InvoiceCount:  len(amounts),
		TotalRevenue:  total,
	}, nil
}
