package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/irelec-api/internal/application/dto"
)

// customerRow fila del archivo con su número de línea (para reportar errores).
type customerRow struct {
	Line int
	Req  dto.CreateCustomerRequest
}

// rowError fila descartada durante el parseo.
type rowError struct {
	Line int
	Err  error
}

func (e rowError) Error() string { return fmt.Sprintf("línea %d: %v", e.Line, e.Err) }

// parseCustomers lee filas full_name;meter_number;contract_number;location;tariff.
// La cabecera es opcional. location y tariff pueden ir vacíos; sin tarifa se usa defaultTariff.
// Las filas inválidas se devuelven aparte sin abortar la lectura.
func parseCustomers(r io.Reader, latin1 bool, defaultTariff decimal.Decimal) ([]customerRow, []rowError, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	var (
		rows    []customerRow
		invalid []rowError
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("leer CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if isBlank(rec) {
			continue
		}
		if len(rows) == 0 && len(invalid) == 0 && isHeader(rec) {
			continue
		}
		if len(rec) < 3 || len(rec) > 5 {
			invalid = append(invalid, rowError{Line: line, Err: fmt.Errorf("se esperaban de 3 a 5 columnas, hay %d", len(rec))})
			continue
		}

		req := dto.CreateCustomerRequest{
			FullName:       strings.TrimSpace(rec[0]),
			MeterNumber:    strings.TrimSpace(rec[1]),
			ContractNumber: strings.TrimSpace(rec[2]),
			Tariff:         defaultTariff,
		}
		if len(rec) > 3 {
			req.Location = strings.TrimSpace(rec[3])
		}
		if len(rec) > 4 {
			if raw := strings.TrimSpace(rec[4]); raw != "" {
				t, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
				if err != nil {
					invalid = append(invalid, rowError{Line: line, Err: fmt.Errorf("tarifa inválida %q", raw)})
					continue
				}
				req.Tariff = t
			}
		}
		rows = append(rows, customerRow{Line: line, Req: req})
	}
	return rows, invalid, nil
}

func isHeader(rec []string) bool {
	return strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(rec[0], "\ufeff")), "full_name")
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
