package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/irelec-api/docs"
	appanalytics "github.com/jhoicas/irelec-api/internal/application/analytics"
	"github.com/jhoicas/irelec-api/internal/application/billing"
	infrapdf "github.com/jhoicas/irelec-api/internal/infrastructure/pdf"
	"github.com/jhoicas/irelec-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/irelec-api/internal/interfaces/http"
	"github.com/jhoicas/irelec-api/pkg/config"
	"github.com/jhoicas/irelec-api/pkg/logger"
)

// @title        IRELEC API
// @version      1.0
// @description  Facturación de consumo eléctrico: clientes, lecturas de medidor y facturas.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer store.Close()

	if cfg.Storage.AutoMigrate {
		applied, err := store.Migrate(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("migrar esquema")
		}
		log.Info().Strs("applied", applied).Msg("esquema al día")
	}

	customerUC := billing.NewCustomerUseCase(store.Customers, log)
	ledgerUC := billing.NewLedgerUseCase(store.TxRunner, store.Customers, store.Invoices, log)

	// PDF: factura imprimible con los datos del emisor configurados
	invoicePDFUC := billing.NewPDFUseCase(store.Invoices, infrapdf.NewMarotoPDFGenerator(), billing.Issuer{
		Name:         cfg.Billing.CompanyName,
		Tagline:      cfg.Billing.Tagline,
		SupportEmail: cfg.Billing.SupportEmail,
		Currency:     cfg.Billing.Currency,
		Unit:         cfg.Billing.Unit,
	})
	dashboardUC := appanalytics.NewDashboardUseCase(store.Analytics, store.Invoices, cfg.Billing.Currency)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID(), httpRouter.AccessLog(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "IRELEC API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:  customerUC,
		LedgerUC:    ledgerUC,
		InvoicePDF:  invoicePDFUC,
		DashboardUC: dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
