package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/irelec-api/internal/domain"
	"github.com/jhoicas/irelec-api/internal/domain/repository"
)

// PDFUseCase genera el documento PDF descargable de una factura ya registrada.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	generator   InvoicePDFGenerator
	issuer      Issuer
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	generator InvoicePDFGenerator,
	issuer Issuer,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		generator:   generator,
		issuer:      issuer,
	}
}

// DownloadInvoicePDF recupera la factura con los datos de su cliente y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien; filename = "<número>.pdf".
//   - domain.ErrInvalidInput     si el número viene vacío.
//   - domain.ErrNotFound         si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, number string) (pdfBytes []byte, filename string, err error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, "", fmt.Errorf("%w: invoice_number es requerido", domain.ErrInvalidInput)
	}

	inv, err := uc.invoiceRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, uc.issuer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, inv.Number + ".pdf", nil
}
