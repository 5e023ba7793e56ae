package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un abonado del servicio eléctrico.
// MeterNumber y ContractNumber son únicos en todo el registro.
type Customer struct {
	ID             int64
	FullName       string
	MeterNumber    string
	ContractNumber string
	Location       string          // Opcional
	Tariff         decimal.Decimal // Precio por kWh en moneda local
	CreatedAt      time.Time
}
