package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/irelec-api/internal/domain"
	"github.com/jhoicas/irelec-api/internal/domain/entity"
	"github.com/jhoicas/irelec-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceViewSelect = `
	SELECT i.id, i.customer_id, i.invoice_number, i.previous_index, i.current_index,
	       i.consumption, i.tariff_applied, i.amount, i.created_at,
	       c.full_name, c.meter_number, c.contract_number, c.location
	FROM invoices i
	JOIN customers c ON c.id = i.customer_id`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la factura y asigna su ID.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (customer_id, invoice_number, previous_index, current_index, consumption, tariff_applied, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		invoice.CustomerID, invoice.Number, invoice.PreviousIndex, invoice.CurrentIndex,
		invoice.Consumption, invoice.TariffApplied, invoice.Amount, invoice.CreatedAt,
	).Scan(&invoice.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de factura %s", domain.ErrDuplicate, invoice.Number)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByNumber obtiene la factura con los datos de su cliente.
func (r *InvoiceRepo) GetByNumber(ctx context.Context, number string) (*entity.InvoiceView, error) {
	v, err := scanInvoiceView(r.q.QueryRow(ctx, invoiceViewSelect+` WHERE i.invoice_number = $1`, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return v, nil
}

// List historial filtrado, la más reciente primero.
func (r *InvoiceRepo) List(ctx context.Context, filter repository.InvoiceFilter) ([]*entity.InvoiceView, error) {
	var (
		where []string
		args  []any
	)
	if filter.CustomerID > 0 {
		args = append(args, filter.CustomerID)
		where = append(where, fmt.Sprintf("i.customer_id = $%d", len(args)))
	}
	if !filter.From.IsZero() && !filter.To.IsZero() {
		args = append(args, filter.From, filter.To)
		where = append(where, fmt.Sprintf("i.created_at >= $%d AND i.created_at < $%d", len(args)-1, len(args)))
	}

	query := invoiceViewSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY i.created_at DESC, i.id DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceView
	for rows.Next() {
		v, err := scanInvoiceView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// CountByBaseNumber cuenta facturas con número base o base-NN.
func (r *InvoiceRepo) CountByBaseNumber(ctx context.Context, base string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM invoices WHERE invoice_number = $1 OR invoice_number LIKE $1 || '-%'`,
		base,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

func scanInvoiceView(row pgxScanner) (*entity.InvoiceView, error) {
	var v entity.InvoiceView
	if err := row.Scan(
		&v.ID, &v.CustomerID, &v.Number, &v.PreviousIndex, &v.CurrentIndex,
		&v.Consumption, &v.TariffApplied, &v.Amount, &v.CreatedAt,
		&v.CustomerName, &v.MeterNumber, &v.ContractNumber, &v.Location,
	); err != nil {
		return nil, err
	}
	return &v, nil
}
