package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/irelec-api/internal/domain"
	"github.com/jhoicas/irelec-api/internal/domain/entity"
	"github.com/jhoicas/irelec-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, full_name, meter_number, contract_number, location, tariff, created_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
	// forUpdate bloquea la fila leída por GetByID hasta el fin de la tx.
	forUpdate bool
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente y asigna su ID.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (full_name, meter_number, contract_number, location, tariff, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		customer.FullName, customer.MeterNumber, customer.ContractNumber,
		customer.Location, customer.Tariff, customer.CreatedAt,
	).Scan(&customer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de medidor o de contrato ya registrado", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// newLedgerCustomerRepository repo atado a la tx del libro: leer el cliente toma
// su fila con FOR UPDATE, así dos registros del mismo cliente no calculan el
// mismo consecutivo del día.
func newLedgerCustomerRepository(tx pgx.Tx) *CustomerRepo {
	return &CustomerRepo{q: tx, forUpdate: true}
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, customerByIDQuery(r.forUpdate), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// List lista todos los clientes, el más reciente primero.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// UpdateTariff cambia la tarifa vigente del cliente.
func (r *CustomerRepo) UpdateTariff(ctx context.Context, id int64, tariff decimal.Decimal) error {
	_, err := r.q.Exec(ctx, `UPDATE customers SET tariff = $2 WHERE id = $1`, id, tariff)
	if err != nil {
		return fmt.Errorf("update customer tariff: %w", err)
	}
	return nil
}

func customerByIDQuery(forUpdate bool) string {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	return query
}

func scanCustomer(row pgxScanner) (*entity.Customer, error) {
	var c entity.Customer
	if err := row.Scan(
		&c.ID, &c.FullName, &c.MeterNumber, &c.ContractNumber, &c.Location, &c.Tariff, &c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
