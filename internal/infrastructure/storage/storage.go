// Package storage arma los repositorios del driver configurado (sqlite o postgres).
package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"github.com/jhoicas/irelec-api/internal/application/billing"
	"github.com/jhoicas/irelec-api/internal/domain/repository"
	"github.com/jhoicas/irelec-api/internal/infrastructure/postgres"
	"github.com/jhoicas/irelec-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/irelec-api/pkg/config"
)

// Store repositorios listos para inyectar en los casos de uso.
type Store struct {
	Driver    string
	Customers repository.CustomerRepository
	Invoices  repository.InvoiceRepository
	Analytics repository.AnalyticsRepository
	TxRunner  billing.LedgerTxRunner

	migrate func(ctx context.Context) ([]string, error)
	close   func() error
}

// Open conecta con el almacenamiento indicado en cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		return sqliteStore(db), nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return postgresStore(pool), nil
	default:
		return nil, fmt.Errorf("storage: driver no soportado %q", cfg.Storage.Driver)
	}
}

func sqliteStore(db *gorm.DB) *Store {
	return &Store{
		Driver:    config.DriverSQLite,
		Customers: sqlite.NewCustomerRepository(db),
		Invoices:  sqlite.NewInvoiceRepository(db),
		Analytics: sqlite.NewAnalyticsRepository(db),
		TxRunner:  sqlite.NewTxRunner(db),
		migrate: func(context.Context) ([]string, error) {
			if err := sqlite.Migrate(db); err != nil {
				return nil, err
			}
			return []string{"automigrate"}, nil
		},
		close: func() error { return sqlite.Close(db) },
	}
}

func postgresStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Driver:    config.DriverPostgres,
		Customers: postgres.NewCustomerRepository(pool),
		Invoices:  postgres.NewInvoiceRepository(pool),
		Analytics: postgres.NewAnalyticsRepository(pool),
		TxRunner:  postgres.NewTxRunner(pool),
		migrate: func(ctx context.Context) ([]string, error) {
			return postgres.Migrate(ctx, pool)
		},
		close: func() error { pool.Close(); return nil },
	}
}

// Migrate crea o actualiza el esquema. Es idempotente en ambos drivers.
func (s *Store) Migrate(ctx context.Context) ([]string, error) {
	return s.migrate(ctx)
}

// Close libera conexiones.
func (s *Store) Close() error {
	return s.close()
}
