package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	FullName       string          `json:"full_name"`
	MeterNumber    string          `json:"meter_number"`
	ContractNumber string          `json:"contract_number"`
	Location       string          `json:"location,omitempty"`
	Tariff         decimal.Decimal `json:"tariff"`
}

// ChangeTariffRequest body para PATCH /api/customers/:id/tariff.
type ChangeTariffRequest struct {
	Tariff decimal.Decimal `json:"tariff"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID             int64           `json:"id"`
	FullName       string          `json:"full_name"`
	MeterNumber    string          `json:"meter_number"`
	ContractNumber string          `json:"contract_number"`
	Location       string          `json:"location,omitempty"`
	Tariff         decimal.Decimal `json:"tariff"`
	CreatedAt      string          `json:"created_at"`
}

// RecordInvoiceRequest body para POST /api/invoices y POST /api/invoices/preview.
// Tariff es opcional: si va vacío se usa la tarifa vigente del cliente.
type RecordInvoiceRequest struct {
	CustomerID    int64            `json:"customer_id"`
	PreviousIndex decimal.Decimal  `json:"previous_index"`
	CurrentIndex  decimal.Decimal  `json:"current_index"`
	Tariff        *decimal.Decimal `json:"tariff,omitempty"`
}

// InvoiceResponse factura con los datos de presentación del cliente.
type InvoiceResponse struct {
	ID             int64           `json:"id"`
	CustomerID     int64           `json:"customer_id"`
	Number         string          `json:"invoice_number"`
	PreviousIndex  decimal.Decimal `json:"previous_index"`
	CurrentIndex   decimal.Decimal `json:"current_index"`
	Consumption    decimal.Decimal `json:"consumption"`
	TariffApplied  decimal.Decimal `json:"tariff_applied"`
	Amount         decimal.Decimal `json:"amount"`
	CreatedAt      string          `json:"created_at"`
	CustomerName   string          `json:"customer_name"`
	MeterNumber    string          `json:"meter_number"`
	ContractNumber string          `json:"contract_number"`
	Location       string          `json:"location,omitempty"`
}

// InvoicePreviewResponse cálculo previo (sin persistir) de una factura.
// Number es el número que se asignaría si se registrara ahora.
type InvoicePreviewResponse struct {
	CustomerID    int64           `json:"customer_id"`
	Number        string          `json:"invoice_number"`
	PreviousIndex decimal.Decimal `json:"previous_index"`
	CurrentIndex  decimal.Decimal `json:"current_index"`
	Consumption   decimal.Decimal `json:"consumption"`
	TariffApplied decimal.Decimal `json:"tariff_applied"`
	Amount        decimal.Decimal `json:"amount"`
}

// InvoiceListQuery filtros de GET /api/invoices.
// Month requiere Year; ambos en cero = todos los meses.
type InvoiceListQuery struct {
	CustomerID int64 `query:"customer_id"`
	Year       int   `query:"year"`
	Month      int   `query:"month"`
}

// InvoiceListResponse historial filtrado con su resumen.
type InvoiceListResponse struct {
	Count       int               `json:"count"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Invoices    []InvoiceResponse `json:"invoices"`
}
