// Package metering contiene el cálculo de facturación por consumo (servicio de dominio puro).
package metering

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/irelec-api/internal/domain"
)

// InvoicePrefix prefijo fijo de los números de factura.
const InvoicePrefix = "FACT"

// Compute calcula consumo e importe a partir de los índices del medidor.
// Consumo = IndiceActual - IndiceAnterior
// Importe = Consumo * Tarifa
// El índice actual debe ser estrictamente mayor que el anterior.
func Compute(previous, current, tariff decimal.Decimal) (consumption, amount decimal.Decimal, err error) {
	if previous.IsNegative() || current.IsNegative() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: los índices no pueden ser negativos", domain.ErrInvalidInput)
	}
	if tariff.IsNegative() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: la tarifa no puede ser negativa", domain.ErrInvalidInput)
	}
	if current.LessThanOrEqual(previous) {
		return decimal.Zero, decimal.Zero, domain.ErrInvalidReading
	}
	consumption = current.Sub(previous)
	return consumption, consumption.Mul(tariff), nil
}

// DeriveInvoiceNumber devuelve el número base de factura: FACT-YYYYMMDD-CCCC,
// con el ID del cliente rellenado a 4 dígitos.
func DeriveInvoiceNumber(customerID int64, issueDate time.Time) string {
	return fmt.Sprintf("%s-%s-%04d", InvoicePrefix, issueDate.Format("20060102"), customerID)
}

// SequencedInvoiceNumber agrega el consecutivo del día al número base.
// La primera factura del día conserva el número base; las siguientes reciben -02, -03, ...
func SequencedInvoiceNumber(base string, seq int) string {
	if seq <= 1 {
		return base
	}
	return fmt.Sprintf("%s-%02d", base, seq)
}
