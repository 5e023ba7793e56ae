package billing

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/irelec-api/internal/domain"
	"github.com/jhoicas/irelec-api/internal/domain/entity"
	"github.com/jhoicas/irelec-api/internal/domain/repository"
)

// memStore almacenamiento en memoria que implementa los puertos de clientes,
// facturas y el LedgerTxRunner (con rollback por snapshot).
type memStore struct {
	mu        sync.Mutex
	customers []entity.Customer
	invoices  []entity.Invoice
	nextCID   int64
	nextIID   int64

	failInvoiceCreate error
}

var (
	_ repository.CustomerRepository = (*memStore)(nil)
	_ repository.InvoiceRepository  = memInvoices{}
	_ LedgerTxRunner                = (*memStore)(nil)
)

func newMemStore() *memStore { return &memStore{} }

func (s *memStore) RunLedger(_ context.Context, fn func(repository.CustomerRepository, repository.InvoiceRepository) error) error {
	s.mu.Lock()
	customers := append([]entity.Customer(nil), s.customers...)
	invoices := append([]entity.Invoice(nil), s.invoices...)
	cid, iid := s.nextCID, s.nextIID
	s.mu.Unlock()

	if err := fn(s, s.invoiceRepo()); err != nil {
		s.mu.Lock()
		s.customers, s.invoices, s.nextCID, s.nextIID = customers, invoices, cid, iid
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memStore) Create(_ context.Context, c *entity.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.customers {
		if existing.MeterNumber == c.MeterNumber || existing.ContractNumber == c.ContractNumber {
			return domain.ErrDuplicate
		}
	}
	s.nextCID++
	c.ID = s.nextCID
	s.customers = append(s.customers, *c)
	return nil
}

func (s *memStore) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memStore) List(_ context.Context) ([]*entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		cp := c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *memStore) UpdateTariff(_ context.Context, id int64, tariff decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers[i].Tariff = tariff
			return nil
		}
	}
	return nil
}

// invoiceRepo expone el memStore como InvoiceRepository (el método Create
// colisiona con el de clientes, por eso se envuelve).
func (s *memStore) invoiceRepo() repository.InvoiceRepository { return memInvoices{s} }

type memInvoices struct{ s *memStore }

func (m memInvoices) Create(ctx context.Context, inv *entity.Invoice) error {
	return m.s.createInvoice(ctx, inv)
}
func (m memInvoices) GetByNumber(ctx context.Context, n string) (*entity.InvoiceView, error) {
	return m.s.GetByNumber(ctx, n)
}
func (m memInvoices) List(ctx context.Context, f repository.InvoiceFilter) ([]*entity.InvoiceView, error) {
	return m.s.listInvoices(ctx, f)
}
func (m memInvoices) CountByBaseNumber(ctx context.Context, base string) (int, error) {
	return m.s.CountByBaseNumber(ctx, base)
}

func (s *memStore) createInvoice(_ context.Context, inv *entity.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failInvoiceCreate != nil {
		return s.failInvoiceCreate
	}
	for _, existing := range s.invoices {
		if existing.Number == inv.Number {
			return domain.ErrDuplicate
		}
	}
	s.nextIID++
	inv.ID = s.nextIID
	s.invoices = append(s.invoices, *inv)
	return nil
}

func (s *memStore) GetByNumber(_ context.Context, number string) (*entity.InvoiceView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.invoices {
		if inv.Number == number {
			return s.viewLocked(inv), nil
		}
	}
	return nil, nil
}

func (s *memStore) listInvoices(_ context.Context, f repository.InvoiceFilter) ([]*entity.InvoiceView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.InvoiceView
	for _, inv := range s.invoices {
		if f.CustomerID != 0 && inv.CustomerID != f.CustomerID {
			continue
		}
		if !f.From.IsZero() && !f.To.IsZero() && (inv.CreatedAt.Before(f.From) || !inv.CreatedAt.Before(f.To)) {
			continue
		}
		out = append(out, s.viewLocked(inv))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *memStore) CountByBaseNumber(_ context.Context, base string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, inv := range s.invoices {
		if inv.Number == base || strings.HasPrefix(inv.Number, base+"-") {
			n++
		}
	}
	return n, nil
}

func (s *memStore) viewLocked(inv entity.Invoice) *entity.InvoiceView {
	v := &entity.InvoiceView{Invoice: inv}
	for _, c := range s.customers {
		if c.ID == inv.CustomerID {
			v.CustomerName = c.FullName
			v.MeterNumber = c.MeterNumber
			v.ContractNumber = c.ContractNumber
			v.Location = c.Location
		}
	}
	return v
}

func (s *memStore) invoiceCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.invoices)
}

var errBoom = errors.New("boom")
