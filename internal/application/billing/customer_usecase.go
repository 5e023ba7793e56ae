package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/irelec-api/internal/application/dto"
	"github.com/jhoicas/irelec-api/internal/domain"
	"github.com/jhoicas/irelec-api/internal/domain/entity"
	"github.com/jhoicas/irelec-api/internal/domain/repository"
	"github.com/jhoicas/irelec-api/pkg/logger"
)

// CustomerUseCase casos de uso del registro de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, log: log, now: time.Now}
}

// Register valida y persiste un nuevo cliente.
// Devuelve domain.ErrInvalidInput si falta un campo obligatorio o la tarifa es negativa,
// y domain.ErrDuplicate si el medidor o el contrato ya existen.
func (uc *CustomerUseCase) Register(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer := &entity.Customer{
		FullName:       strings.TrimSpace(in.FullName),
		MeterNumber:    strings.TrimSpace(in.MeterNumber),
		ContractNumber: strings.TrimSpace(in.ContractNumber),
		Location:       strings.TrimSpace(in.Location),
		Tariff:         in.Tariff,
		CreatedAt:      uc.now(),
	}
	if customer.FullName == "" || customer.MeterNumber == "" || customer.ContractNumber == "" {
		return nil, fmt.Errorf("%w: full_name, meter_number y contract_number son requeridos", domain.ErrInvalidInput)
	}
	if customer.Tariff.IsNegative() {
		return nil, fmt.Errorf("%w: la tarifa no puede ser negativa", domain.ErrInvalidInput)
	}

	if err := uc.repo.Create(ctx, customer); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			uc.log.Warn().
				Str("meter_number", customer.MeterNumber).
				Str("contract_number", customer.ContractNumber).
				Msg("registro de cliente rechazado: clave duplicada")
		}
		return nil, err
	}

	uc.log.Info().
		Int64("customer_id", customer.ID).
		Str("meter_number", customer.MeterNumber).
		Msg("cliente registrado")
	return toCustomerResponse(customer), nil
}

// Get obtiene un cliente por ID.
func (uc *CustomerUseCase) Get(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(c), nil
}

// List lista todos los clientes, el más reciente primero.
func (uc *CustomerUseCase) List(ctx context.Context) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// ChangeTariff actualiza la tarifa vigente del cliente.
// Las facturas ya emitidas conservan su tarifa aplicada.
func (uc *CustomerUseCase) ChangeTariff(ctx context.Context, id int64, tariff decimal.Decimal) (*dto.CustomerResponse, error) {
	if tariff.IsNegative() {
		return nil, fmt.Errorf("%w: la tarifa no puede ser negativa", domain.ErrInvalidInput)
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateTariff(ctx, id, tariff); err != nil {
		return nil, fmt.Errorf("actualizar tarifa: %w", err)
	}

	uc.log.Info().
		Int64("customer_id", id).
		Str("old_tariff", c.Tariff.String()).
		Str("new_tariff", tariff.String()).
		Msg("tarifa actualizada")
	c.Tariff = tariff
	return toCustomerResponse(c), nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:             c.ID,
		FullName:       c.FullName,
		MeterNumber:    c.MeterNumber,
		ContractNumber: c.ContractNumber,
		Location:       c.Location,
		Tariff:         c.Tariff,
		CreatedAt:      c.CreatedAt.Format(dto.DateTimeLayout),
	}
}
