// Package pdf genera el documento imprimible de una factura de electricidad.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + lema (centrado)                           │
//	│  TÍTULO: FACTURE D'ELECTRICITE                               │
//	│  N° Factura + Fecha                                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre / Medidor / Contrato / Localización         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Índices / Consumo / Tarifa / MONTO TOTAL           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: agradecimiento + email de soporte                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/irelec-api/internal/application/billing"
	"github.com/jhoicas/irelec-api/internal/application/dto"
	"github.com/jhoicas/irelec-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.InvoiceView,
	issuer billing.Issuer,
) ([]byte, error) {
	if invoice == nil {
		return nil, fmt.Errorf("pdf: factura nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 12}).
		WithTitle("Facture "+invoice.Number, true).
		WithAuthor(issuer.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(issuer)...)
	m.AddRows(numberRows(invoice)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRows(invoice)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailRows(invoice, issuer)...)
	m.AddRows(row.New(20))
	m.AddRows(footerRows(issuer)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRows(issuer billing.Issuer) []core.Row {
	rows := []core.Row{
		centered(10, issuer.Name+" - Système de Facturation d'Electricité", props.Text{
			Style: fontstyle.Bold, Size: 16, Color: colorPrimary,
		}),
	}
	if issuer.Tagline != "" {
		rows = append(rows, centered(10, issuer.Tagline, props.Text{Size: 12, Color: colorGray}))
	}
	rows = append(rows,
		row.New(5),
		centered(12, "FACTURE D'ELECTRICITE", props.Text{Style: fontstyle.Bold, Size: 14}),
	)
	return rows
}

func numberRows(invoice *entity.InvoiceView) []core.Row {
	return []core.Row{
		plain(10, "Numéro Facture: "+invoice.Number),
		plain(10, "Date: "+invoice.CreatedAt.Format(dto.DateTimeLayout)),
	}
}

func customerRows(invoice *entity.InvoiceView) []core.Row {
	return []core.Row{
		section("Informations Client"),
		plain(8, "Nom Complet: "+invoice.CustomerName),
		plain(8, "Numéro Compteur: "+invoice.MeterNumber),
		plain(8, "Numéro Contrat: "+invoice.ContractNumber),
		plain(8, "Localisation: "+nonEmpty(invoice.Location, "-")),
	}
}

func detailRows(invoice *entity.InvoiceView, issuer billing.Issuer) []core.Row {
	unit, currency := issuer.Unit, issuer.Currency
	return []core.Row{
		section("Détails de Facturation"),
		plain(8, fmt.Sprintf("Index Précédent: %s %s", formatAmount(invoice.PreviousIndex), unit)),
		plain(8, fmt.Sprintf("Index Actuel: %s %s", formatAmount(invoice.CurrentIndex), unit)),
		plain(8, fmt.Sprintf("Consommation: %s %s", formatAmount(invoice.Consumption), unit)),
		plain(8, fmt.Sprintf("Tarif: %s %s/%s", formatAmount(invoice.TariffApplied), currency, unit)),
		row.New(6),
		row.New(10).Add(col.New(12).Add(
			text.New(fmt.Sprintf("MONTANT TOTAL: %s %s", formatAmount(invoice.Amount), currency), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		)),
	}
}

func footerRows(issuer billing.Issuer) []core.Row {
	rows := []core.Row{
		centered(6, fmt.Sprintf("Merci d'utiliser les services %s.", issuer.Name), props.Text{
			Style: fontstyle.Italic, Size: 10, Color: colorGray,
		}),
	}
	if issuer.SupportEmail != "" {
		rows = append(rows, centered(6, "Pour toute question, contactez: "+issuer.SupportEmail, props.Text{
			Style: fontstyle.Italic, Size: 10, Color: colorGray,
		}))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func centered(height float64, s string, p props.Text) core.Row {
	p.Align = align.Center
	p.Top = 1
	return row.New(height).Add(col.New(12).Add(text.New(s, p)))
}

func plain(height float64, s string) core.Row {
	return row.New(height).Add(col.New(12).Add(text.New(s, props.Text{Size: 12, Top: 1})))
}

func section(title string) core.Row {
	return row.New(10).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
	})))
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// formatAmount redondea a 2 decimales e inserta espacios de miles.
// Ej: 3750 → "3 750.00", -1234567.5 → "-1 234 567.50"
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "." + frac
}
