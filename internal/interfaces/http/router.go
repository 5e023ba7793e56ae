package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/irelec-api/internal/application/analytics"
	"github.com/jhoicas/irelec-api/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC  *billing.CustomerUseCase
	LedgerUC    *billing.LedgerUseCase
	InvoicePDF  *billing.PDFUseCase
	DashboardUC *appanalytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Registro de clientes
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Patch("/:id/tariff", customerHandler.ChangeTariff)

	// Libro de facturas (preview antes de /:number)
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.LedgerUC, deps.InvoicePDF)
	invoices.Post("/preview", invoiceHandler.Preview)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:number", invoiceHandler.GetByNumber)
	invoices.Get("/:number/pdf", invoiceHandler.DownloadPDF)

	// Tablero
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
