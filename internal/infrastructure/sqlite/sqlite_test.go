package sqlite

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jhoicas/irelec-api/internal/domain"
	"github.com/jhoicas/irelec-api/internal/domain/entity"
	"github.com/jhoicas/irelec-api/internal/domain/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func newCustomer(meter string, at time.Time) *entity.Customer {
	return &entity.Customer{
		FullName:       "Jean Dupont",
		MeterNumber:    meter,
		ContractNumber: "CNT-" + meter,
		Location:       "Douala",
		Tariff:         decimal.RequireFromString("75.5"),
		CreatedAt:      at,
	}
}

func newInvoice(customerID int64, number string, amount string, at time.Time) *entity.Invoice {
	return &entity.Invoice{
		CustomerID:    customerID,
		Number:        number,
		PreviousIndex: decimal.RequireFromString("100"),
		CurrentIndex:  decimal.RequireFromString("150"),
		Consumption:   decimal.RequireFromString("50"),
		TariffApplied: decimal.RequireFromString("75"),
		Amount:        decimal.RequireFromString(amount),
		CreatedAt:     at,
	}
}

func TestMigrate_Idempotente(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable("customers"))
	assert.True(t, db.Migrator().HasTable("invoices"))
}

func TestCustomerRepo(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()
	t0 := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.Local)

	first := newCustomer("M-1", t0)
	require.NoError(t, repo.Create(ctx, first))
	assert.NotZero(t, first.ID)
	second := newCustomer("M-2", t0.Add(time.Minute))
	require.NoError(t, repo.Create(ctx, second))

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "75.5", got.Tariff.String())
	assert.True(t, got.CreatedAt.Equal(t0))

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "más reciente primero")

	require.NoError(t, repo.UpdateTariff(ctx, first.ID, decimal.RequireFromString("90")))
	got, err = repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "90", got.Tariff.String())
}

func TestCustomerRepo_Duplicados(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Create(ctx, newCustomer("M-1", now)))

	sameMeter := newCustomer("M-1", now)
	sameMeter.ContractNumber = "OTRO"
	assert.ErrorIs(t, repo.Create(ctx, sameMeter), domain.ErrDuplicate)

	sameContract := newCustomer("M-2", now)
	sameContract.ContractNumber = "CNT-M-1"
	assert.ErrorIs(t, repo.Create(ctx, sameContract), domain.ErrDuplicate)
}

func TestInvoiceRepo(t *testing.T) {
	db := setupTestDB(t)
	customers := NewCustomerRepository(db)
	invoices := NewInvoiceRepository(db)
	ctx := context.Background()
	march := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)
	april := time.Date(2024, time.April, 2, 9, 0, 0, 0, time.Local)

	a := newCustomer("M-A", march)
	b := newCustomer("M-B", march)
	require.NoError(t, customers.Create(ctx, a))
	require.NoError(t, customers.Create(ctx, b))

	inv1 := newInvoice(a.ID, "FACT-20240315-0001", "3750", march)
	require.NoError(t, invoices.Create(ctx, inv1))
	assert.NotZero(t, inv1.ID)
	require.NoError(t, invoices.Create(ctx, newInvoice(a.ID, "FACT-20240315-0001-02", "100.25", march.Add(time.Hour))))
	require.NoError(t, invoices.Create(ctx, newInvoice(b.ID, "FACT-20240402-0002", "10", april)))

	err := invoices.Create(ctx, newInvoice(a.ID, "FACT-20240315-0001", "1", march))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	v, err := invoices.GetByNumber(ctx, "FACT-20240315-0001")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "Jean Dupont", v.CustomerName)
	assert.Equal(t, "M-A", v.MeterNumber)
	assert.Equal(t, "CNT-M-A", v.ContractNumber)
	assert.Equal(t, inv1.ID, v.ID)
	assert.Equal(t, a.ID, v.CustomerID)
	assert.Equal(t, "FACT-20240315-0001", v.Number)
	assert.Equal(t, "100", v.PreviousIndex.String())
	assert.Equal(t, "150", v.CurrentIndex.String())
	assert.Equal(t, "50", v.Consumption.String())
	assert.Equal(t, "75", v.TariffApplied.String())
	assert.Equal(t, "3750", v.Amount.String())
	assert.True(t, v.CreatedAt.Equal(march))

	none, err := invoices.GetByNumber(ctx, "FACT-00000000-0000")
	require.NoError(t, err)
	assert.Nil(t, none)

	all, err := invoices.List(ctx, repository.InvoiceFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "FACT-20240402-0002", all[0].Number)

	onlyA, err := invoices.List(ctx, repository.InvoiceFilter{CustomerID: a.ID})
	require.NoError(t, err)
	require.Len(t, onlyA, 2)
	for _, inv := range onlyA {
		assert.Equal(t, a.ID, inv.CustomerID)
		assert.True(t, strings.HasPrefix(inv.Number, "FACT-20240315-0001"), inv.Number)
		assert.False(t, inv.Amount.IsZero())
	}
	assert.Equal(t, "FACT-20240315-0001-02", onlyA[0].Number)
	assert.Equal(t, "100.25", onlyA[0].Amount.String())

	inMarch, err := invoices.List(ctx, repository.InvoiceFilter{
		From: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local),
		To:   time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)
	assert.Len(t, inMarch, 2)

	limited, err := invoices.List(ctx, repository.InvoiceFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	n, err := invoices.CountByBaseNumber(ctx, "FACT-20240315-0001")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = invoices.CountByBaseNumber(ctx, "FACT-20240315-00012")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAnalyticsRepo(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	analytics := NewAnalyticsRepository(db)

	empty, err := analytics.GetBillingTotals(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.InvoiceCount)
	assert.True(t, empty.TotalRevenue.IsZero())

	c := newCustomer("M-1", time.Now())
	require.NoError(t, NewCustomerRepository(db).Create(ctx, c))
	invoices := NewInvoiceRepository(db)
	require.NoError(t, invoices.Create(ctx, newInvoice(c.ID, "FACT-1", "0.1", time.Now())))
	require.NoError(t, invoices.Create(ctx, newInvoice(c.ID, "FACT-2", "0.2", time.Now())))

	totals, err := analytics.GetBillingTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, totals.CustomerCount)
	assert.Equal(t, 2, totals.InvoiceCount)
	assert.Equal(t, "0.3", totals.TotalRevenue.String())
}

func TestTxRunner_Rollback(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	c := newCustomer("M-1", time.Now())
	require.NoError(t, NewCustomerRepository(db).Create(ctx, c))

	boom := fmt.Errorf("boom")
	err := NewTxRunner(db).RunLedger(ctx, func(_ repository.CustomerRepository, invoices repository.InvoiceRepository) error {
		if err := invoices.Create(ctx, newInvoice(c.ID, "FACT-1", "10", time.Now())); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := NewInvoiceRepository(db).CountByBaseNumber(ctx, "FACT-1")
	require.NoError(t, err)
	assert.Zero(t, n)
}
