package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jhoicas/irelec-api/internal/domain"
	"github.com/jhoicas/irelec-api/internal/domain/entity"
	"github.com/jhoicas/irelec-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// invoiceViewRow resultado del JOIN invoices/customers.
// Inv debe ser un campo exportado: GORM ignora los embebidos no exportados.
type invoiceViewRow struct {
	Inv            invoiceModel `gorm:"embedded"`
	CustomerName   string
	MeterNumber    string
	ContractNumber string
	Location       string
}

// InvoiceRepo implementación GORM de InvoiceRepository (db o tx).
type InvoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	m := invoiceModel{
		CustomerID:    invoice.CustomerID,
		Number:        invoice.Number,
		PreviousIndex: invoice.PreviousIndex,
		CurrentIndex:  invoice.CurrentIndex,
		Consumption:   invoice.Consumption,
		TariffApplied: invoice.TariffApplied,
		Amount:        invoice.Amount,
		CreatedAt:     invoice.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de factura %s", domain.ErrDuplicate, invoice.Number)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	invoice.ID = m.ID
	return nil
}

func (r *InvoiceRepo) GetByNumber(ctx context.Context, number string) (*entity.InvoiceView, error) {
	var rows []invoiceViewRow
	err := r.viewQuery(ctx).Where("invoices.invoice_number = ?", number).Limit(1).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toEntity(), nil
}

func (r *InvoiceRepo) List(ctx context.Context, filter repository.InvoiceFilter) ([]*entity.InvoiceView, error) {
	q := r.viewQuery(ctx)
	if filter.CustomerID > 0 {
		q = q.Where("invoices.customer_id = ?", filter.CustomerID)
	}
	if !filter.From.IsZero() && !filter.To.IsZero() {
		q = q.Where("invoices.created_at >= ? AND invoices.created_at < ?", filter.From.UTC(), filter.To.UTC())
	}
	q = q.Order("invoices.created_at DESC, invoices.id DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var rows []invoiceViewRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	list := make([]*entity.InvoiceView, 0, len(rows))
	for i := range rows {
		list = append(list, rows[i].toEntity())
	}
	return list, nil
}

func (r *InvoiceRepo) CountByBaseNumber(ctx context.Context, base string) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&invoiceModel{}).
		Where("invoice_number = ? OR invoice_number LIKE ?", base, base+"-%").
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return int(n), nil
}

func (r *InvoiceRepo) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("invoices").
		Select("invoices.*, customers.full_name AS customer_name, customers.meter_number AS meter_number, " +
			"customers.contract_number AS contract_number, customers.location AS location").
		Joins("JOIN customers ON customers.id = invoices.customer_id")
}

func (v *invoiceViewRow) toEntity() *entity.InvoiceView {
	return &entity.InvoiceView{
		Invoice: entity.Invoice{
			ID:            v.Inv.ID,
			CustomerID:    v.Inv.CustomerID,
			Number:        v.Inv.Number,
			PreviousIndex: v.Inv.PreviousIndex,
			CurrentIndex:  v.Inv.CurrentIndex,
			Consumption:   v.Inv.Consumption,
			TariffApplied: v.Inv.TariffApplied,
			Amount:        v.Inv.Amount,
			CreatedAt:     v.Inv.CreatedAt.Local(),
		},
		CustomerName:   v.CustomerName,
		MeterNumber:    v.MeterNumber,
		ContractNumber: v.ContractNumber,
		Location:       v.Location,
	}
}
