package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalCustomers int             `json:"total_customers"`
	TotalInvoices  int             `json:"total_invoices"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	Currency       string          `json:"currency"`

	// Últimas facturas emitidas (más reciente primero)
	RecentInvoices []RecentInvoiceDTO `json:"recent_invoices"`
}

// RecentInvoiceDTO fila del widget de actividad reciente.
type RecentInvoiceDTO struct {
	Number       string          `json:"invoice_number"`
	CustomerName string          `json:"customer_name"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
}
