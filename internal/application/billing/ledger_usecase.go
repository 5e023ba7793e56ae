package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/irelec-api/internal/application/dto"
	"github.com/jhoicas/irelec-api/internal/domain"
	"github.com/jhoicas/irelec-api/internal/domain/entity"
	"github.com/jhoicas/irelec-api/internal/domain/metering"
	"github.com/jhoicas/irelec-api/internal/domain/repository"
	"github.com/jhoicas/irelec-api/pkg/logger"
)

// LedgerUseCase libro de facturas: registro, cálculo previo y consultas.
type LedgerUseCase struct {
	txRunner     LedgerTxRunner
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	log          *logger.Logger
	now          func() time.Time
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner LedgerTxRunner,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
	log *logger.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		log:          log,
		now:          time.Now,
	}
}

// WithClock reemplaza el reloj del caso de uso (tests).
func (uc *LedgerUseCase) WithClock(now func() time.Time) *LedgerUseCase {
	uc.now = now
	return uc
}

// Record registra una factura para el cliente indicado.
//
// Todo ocurre en una sola transacción:
//  1. Cargar cliente (domain.ErrNotFound si no existe)
//  2. Calcular consumo e importe (domain.ErrInvalidReading si el índice no avanza)
//  3. Derivar número FACT-YYYYMMDD-CCCC con consecutivo del día
//  4. Persistir la factura con copia de la tarifa
func (uc *LedgerUseCase) Record(ctx context.Context, in dto.RecordInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: customer_id es requerido", domain.ErrInvalidInput)
	}

	now := uc.now()
	var view *entity.InvoiceView

	err := uc.txRunner.RunLedger(ctx, func(
		customerRepo repository.CustomerRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		customer, err := customerRepo.GetByID(ctx, in.CustomerID)
		if err != nil {
			return fmt.Errorf("ledger: obtener cliente: %w", err)
		}
		if customer == nil {
			return domain.ErrNotFound
		}

		tariff := customer.Tariff
		if in.Tariff != nil {
			tariff = *in.Tariff
		}
		consumption, amount, err := metering.Compute(in.PreviousIndex, in.CurrentIndex, tariff)
		if err != nil {
			return err
		}

		number, err := nextInvoiceNumber(ctx, invoiceRepo, customer.ID, now)
		if err != nil {
			return err
		}

		inv := entity.Invoice{
			CustomerID:    customer.ID,
			Number:        number,
			PreviousIndex: in.PreviousIndex,
			CurrentIndex:  in.CurrentIndex,
			Consumption:   consumption,
			TariffApplied: tariff,
			Amount:        amount,
			CreatedAt:     now,
		}
		if err := invoiceRepo.Create(ctx, &inv); err != nil {
			return err
		}
		view = &entity.InvoiceView{
			Invoice:        inv,
			CustomerName:   customer.FullName,
			MeterNumber:    customer.MeterNumber,
			ContractNumber: customer.ContractNumber,
			Location:       customer.Location,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("invoice_number", view.Number).
		Int64("customer_id", view.CustomerID).
		Str("consumption", view.Consumption.String()).
		Str("amount", view.Amount.String()).
		Msg("factura registrada")
	return toInvoiceResponse(view), nil
}

// Preview calcula la factura sin persistirla. Number es el número que se
// asignaría si se registrara en este momento.
func (uc *LedgerUseCase) Preview(ctx context.Context, in dto.RecordInvoiceRequest) (*dto.InvoicePreviewResponse, error) {
	if in.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: customer_id es requerido", domain.ErrInvalidInput)
	}
	customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("ledger: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	tariff := customer.Tariff
	if in.Tariff != nil {
		tariff = *in.Tariff
	}
	consumption, amount, err := metering.Compute(in.PreviousIndex, in.CurrentIndex, tariff)
	if err != nil {
		return nil, err
	}
	number, err := nextInvoiceNumber(ctx, uc.invoiceRepo, customer.ID, uc.now())
	if err != nil {
		return nil, err
	}

	return &dto.InvoicePreviewResponse{
		CustomerID:    customer.ID,
		Number:        number,
		PreviousIndex: in.PreviousIndex,
		CurrentIndex:  in.CurrentIndex,
		Consumption:   consumption,
		TariffApplied: tariff,
		Amount:        amount,
	}, nil
}

// List devuelve el historial filtrado por cliente y/o mes, con conteo y total.
func (uc *LedgerUseCase) List(ctx context.Context, q dto.InvoiceListQuery) (*dto.InvoiceListResponse, error) {
	filter, err := toInvoiceFilter(q)
	if err != nil {
		return nil, err
	}
	list, err := uc.invoiceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}

	resp := &dto.InvoiceListResponse{
		Count:       len(list),
		TotalAmount: decimal.Zero,
		Invoices:    make([]dto.InvoiceResponse, 0, len(list)),
	}
	for _, v := range list {
		resp.TotalAmount = resp.TotalAmount.Add(v.Amount)
		resp.Invoices = append(resp.Invoices, *toInvoiceResponse(v))
	}
	return resp, nil
}

// GetByNumber obtiene una factura por su número.
func (uc *LedgerUseCase) GetByNumber(ctx context.Context, number string) (*dto.InvoiceResponse, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, fmt.Errorf("%w: invoice_number es requerido", domain.ErrInvalidInput)
	}
	v, err := uc.invoiceRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("obtener factura: %w", err)
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(v), nil
}

// nextInvoiceNumber deriva el número base del día y le agrega el consecutivo
// según las facturas ya emitidas con esa misma base.
func nextInvoiceNumber(ctx context.Context, repo repository.InvoiceRepository, customerID int64, issueDate time.Time) (string, error) {
	base := metering.DeriveInvoiceNumber(customerID, issueDate)
	issued, err := repo.CountByBaseNumber(ctx, base)
	if err != nil {
		return "", fmt.Errorf("ledger: consecutivo de factura: %w", err)
	}
	return metering.SequencedInvoiceNumber(base, issued+1), nil
}

// toInvoiceFilter traduce año/mes en un rango [From, To) en hora local.
func toInvoiceFilter(q dto.InvoiceListQuery) (repository.InvoiceFilter, error) {
	filter := repository.InvoiceFilter{CustomerID: q.CustomerID}
	if q.CustomerID < 0 {
		return filter, fmt.Errorf("%w: customer_id inválido", domain.ErrInvalidInput)
	}
	switch {
	case q.Year == 0 && q.Month == 0:
		return filter, nil
	case q.Year <= 0:
		return filter, fmt.Errorf("%w: month requiere year", domain.ErrInvalidInput)
	case q.Month < 0 || q.Month > 12:
		return filter, fmt.Errorf("%w: month debe estar entre 1 y 12", domain.ErrInvalidInput)
	case q.Month == 0:
		filter.From = time.Date(q.Year, time.January, 1, 0, 0, 0, 0, time.Local)
		filter.To = filter.From.AddDate(1, 0, 0)
	default:
		filter.From = time.Date(q.Year, time.Month(q.Month), 1, 0, 0, 0, 0, time.Local)
		filter.To = filter.From.AddDate(0, 1, 0)
	}
	return filter, nil
}

func toInvoiceResponse(v *entity.InvoiceView) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:             v.ID,
		CustomerID:     v.CustomerID,
		Number:         v.Number,
		PreviousIndex:  v.PreviousIndex,
		CurrentIndex:   v.CurrentIndex,
		Consumption:    v.Consumption,
		TariffApplied:  v.TariffApplied,
		Amount:         v.Amount,
		CreatedAt:      v.CreatedAt.Format(dto.DateTimeLayout),
		CustomerName:   v.CustomerName,
		MeterNumber:    v.MeterNumber,
		ContractNumber: v.ContractNumber,
		Location:       v.Location,
	}
}
