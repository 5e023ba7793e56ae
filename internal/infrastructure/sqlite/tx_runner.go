package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/jhoicas/irelec-api/internal/application/billing"
	"github.com/jhoicas/irelec-api/internal/domain/repository"
)

var _ billing.LedgerTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción GORM.
type TxRunner struct {
	db *gorm.DB
}

func NewTxRunner(db *gorm.DB) *TxRunner {
	return &TxRunner{db: db}
}

// RunLedger hace Commit si fn retorna nil y Rollback en caso contrario.
func (r *TxRunner) RunLedger(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewCustomerRepository(tx), NewInvoiceRepository(tx))
	})
}
