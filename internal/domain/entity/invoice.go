package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura de consumo. Es un registro histórico inmutable:
// TariffApplied es una copia de la tarifa del cliente al momento de facturar.
type Invoice struct {
	ID            int64
	CustomerID    int64
	Number        string // FACT-YYYYMMDD-CCCC[-NN]
	PreviousIndex decimal.Decimal
	CurrentIndex  decimal.Decimal
	Consumption   decimal.Decimal // CurrentIndex - PreviousIndex
	TariffApplied decimal.Decimal
	Amount        decimal.Decimal // Consumption * TariffApplied
	CreatedAt     time.Time
}

// InvoiceView factura junto con los datos de presentación de su cliente
// (listados, historial y PDF).
type InvoiceView struct {
	Invoice
	CustomerName   string
	MeterNumber    string
	ContractNumber string
	Location       string
}
