package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/irelec-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Los métodos Get* devuelven (nil, nil) si el registro no existe.
type CustomerRepository interface {
	// Create asigna ID y persiste el cliente. Devuelve domain.ErrDuplicate si
	// el número de medidor o de contrato ya existe.
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	// List devuelve todos los clientes, el más reciente primero.
	List(ctx context.Context) ([]*entity.Customer, error)
	UpdateTariff(ctx context.Context, id int64, tariff decimal.Decimal) error
}
