package sqlite

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jhoicas/irelec-api/internal/domain"
	"github.com/jhoicas/irelec-api/internal/domain/entity"
	"github.com/jhoicas/irelec-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación GORM de CustomerRepository (db o tx).
type CustomerRepo struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	m := customerModel{
		FullName:       customer.FullName,
		MeterNumber:    customer.MeterNumber,
		ContractNumber: customer.ContractNumber,
		Location:       customer.Location,
		Tariff:         customer.Tariff,
		CreatedAt:      customer.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de medidor o de contrato ya registrado", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	customer.ID = m.ID
	return nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var rows []customerModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toEntity(), nil
}

func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	var rows []customerModel
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	list := make([]*entity.Customer, 0, len(rows))
	for i := range rows {
		list = append(list, rows[i].toEntity())
	}
	return list, nil
}

func (r *CustomerRepo) UpdateTariff(ctx context.Context, id int64, tariff decimal.Decimal) error {
	err := r.db.WithContext(ctx).Model(&customerModel{}).Where("id = ?", id).Update("tariff", tariff).Error
	if err != nil {
		return fmt.Errorf("update customer tariff: %w", err)
	}
	return nil
}

func (m *customerModel) toEntity() *entity.Customer {
	return &entity.Customer{
		ID:             m.ID,
		FullName:       m.FullName,
		MeterNumber:    m.MeterNumber,
		ContractNumber: m.ContractNumber,
		Location:       m.Location,
		Tariff:         m.Tariff,
		CreatedAt:      m.CreatedAt.Local(),
	}
}
