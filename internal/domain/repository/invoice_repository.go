package repository

import (
	"context"
	"time"

	"github.com/jhoicas/irelec-api/internal/domain/entity"
)

// InvoiceFilter filtros opcionales del historial de facturas.
// El rango [From, To) aplica solo si ambos extremos están definidos.
type InvoiceFilter struct {
	CustomerID int64 // 0 = todos los clientes
	From       time.Time
	To         time.Time
	Limit      int // 0 = sin límite
}

// InvoiceRepository define el puerto de persistencia para Invoice.
// No existe Update ni Delete: las facturas son inmutables.
type InvoiceRepository interface {
	// Create asigna ID y persiste la factura. Devuelve domain.ErrDuplicate si el número ya existe.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// GetByNumber devuelve la factura con los datos de su cliente, o (nil, nil).
	GetByNumber(ctx context.Context, number string) (*entity.InvoiceView, error)
	// List devuelve facturas con datos del cliente, la más reciente primero.
	List(ctx context.Context, filter InvoiceFilter) ([]*entity.InvoiceView, error)
	// CountByBaseNumber cuenta las facturas cuyo número es base o base-NN
	// (consecutivo diario por cliente).
	CountByBaseNumber(ctx context.Context, base string) (int, error)
}
