package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/irelec-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del tablero.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve totales del registro y las facturas más recientes.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_customers, total_invoices, total_revenue,
// currency, recent_invoices[5]).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(summary)
}
