package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/irelec-api/internal/application/billing"
	"github.com/jhoicas/irelec-api/internal/application/dto"
)

// InvoiceHandler maneja el libro de facturas y la descarga en PDF.
type InvoiceHandler struct {
	ledger *billing.LedgerUseCase
	pdf    *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(ledger *billing.LedgerUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{ledger: ledger, pdf: pdf}
}

// Create godoc
// @Summary      Registrar factura a partir de dos lecturas del medidor
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RecordInvoiceRequest  true  "customer_id, previous_index, current_index, tariff (opcional)"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.RecordInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	invoice, err := h.ledger.Record(c.Context(), in)
	if err != nil {
		return writeError(c, err, "cliente no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// Preview godoc
// @Summary      Calcular factura sin registrarla
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RecordInvoiceRequest  true  "customer_id, previous_index, current_index, tariff (opcional)"
// @Success      200   {object}  dto.InvoicePreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/invoices/preview [post]
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	var in dto.RecordInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	preview, err := h.ledger.Preview(c.Context(), in)
	if err != nil {
		return writeError(c, err, "cliente no encontrado")
	}
	return c.JSON(preview)
}

// List godoc
// @Summary      Historial de facturas con resumen
// @Tags         invoices
// @Produce      json
// @Param        customer_id  query     int  false  "Filtrar por cliente"
// @Param        year         query     int  false  "Año"
// @Param        month        query     int  false  "Mes (1-12, requiere year)"
// @Success      200          {object}  dto.InvoiceListResponse
// @Failure      400          {object}  dto.ErrorResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var q dto.InvoiceListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de consulta inválidos"})
	}
	list, err := h.ledger.List(c.Context(), q)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(list)
}

// GetByNumber GET /api/invoices/:number
func (h *InvoiceHandler) GetByNumber(c *fiber.Ctx) error {
	invoice, err := h.ledger.GetByNumber(c.Context(), c.Params("number"))
	if err != nil {
		return writeError(c, err, "factura no encontrada")
	}
	return c.JSON(invoice)
}

// DownloadPDF godoc
// @Summary      Descargar la factura en PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        number  path  string  true  "Número de factura"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{number}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), c.Params("number"))
	if err != nil {
		return writeError(c, err, "factura no encontrada")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
