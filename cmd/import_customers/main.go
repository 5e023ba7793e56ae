// import_customers registra clientes en bloque desde un CSV separado por ';'.
//
// Uso: go run ./cmd/import_customers [--latin1] clientes.csv
// Formato: full_name;meter_number;contract_number;location;tariff
// Los duplicados (medidor o contrato ya registrados) se reportan y se omiten.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/jhoicas/irelec-api/internal/application/billing"
	"github.com/jhoicas/irelec-api/internal/domain"
	"github.com/jhoicas/irelec-api/internal/infrastructure/storage"
	"github.com/jhoicas/irelec-api/pkg/config"
	"github.com/jhoicas/irelec-api/pkg/logger"
)

// importReport resumen de la importación.
type importReport struct {
	Imported   int
	Duplicates int
	Invalid    int
}

func main() {
	latin1 := pflag.Bool("latin1", false, "decodificar el archivo como ISO-8859-1")
	pflag.Parse()
	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: import_customers [--latin1] <archivo.csv>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name + "-import"})

	f, err := os.Open(pflag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer store.Close()
	if cfg.Storage.AutoMigrate {
		if _, err := store.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("migrar esquema")
		}
	}

	uc := billing.NewCustomerUseCase(store.Customers, log)
	report, err := importCustomers(ctx, uc, f, *latin1, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("importar clientes")
	}
	log.Info().
		Int("imported", report.Imported).
		Int("duplicates", report.Duplicates).
		Int("invalid", report.Invalid).
		Msg("importación finalizada")
}

// importCustomers registra cada fila válida. Duplicados e inválidos se cuentan sin abortar.
func importCustomers(
	ctx context.Context,
	uc *billing.CustomerUseCase,
	r io.Reader,
	latin1 bool,
	cfg *config.Config,
	log *logger.Logger,
) (importReport, error) {
	var report importReport
	rows, invalid, err := parseCustomers(r, latin1, cfg.Billing.DefaultTariff)
	if err != nil {
		return report, err
	}
	for _, e := range invalid {
		log.Warn().Int("line", e.Line).Err(e.Err).Msg("fila descartada")
	}
	report.Invalid = len(invalid)

	for _, row := range rows {
		_, err := uc.Register(ctx, row.Req)
		switch {
		case err == nil:
			report.Imported++
		case errors.Is(err, domain.ErrDuplicate):
			report.Duplicates++
			log.Warn().Int("line", row.Line).Str("meter_number", row.Req.MeterNumber).Msg("cliente duplicado, omitido")
		case errors.Is(err, domain.ErrInvalidInput):
			report.Invalid++
			log.Warn().Int("line", row.Line).Err(err).Msg("fila descartada")
		default:
			return report, fmt.Errorf("línea %d: %w", row.Line, err)
		}
	}
	return report, nil
}
