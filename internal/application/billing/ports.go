package billing

import (
	"context"

	"github.com/jhoicas/irelec-api/internal/domain/entity"
	"github.com/jhoicas/irelec-api/internal/domain/repository"
)

// LedgerTxRunner ejecuta una función dentro de una transacción con los repos de clientes y facturas.
// Si fn retorna error se hace rollback: ninguna escritura parcial queda persistida.
type LedgerTxRunner interface {
	RunLedger(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// Issuer datos del emisor impresos en la factura.
type Issuer struct {
	Name         string
	Tagline      string
	SupportEmail string
	Currency     string
	Unit         string
}

// InvoicePDFGenerator genera el documento PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.InvoiceView, issuer Issuer) ([]byte, error)
}
