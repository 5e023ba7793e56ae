// migrate crea o actualiza el esquema del almacenamiento configurado (STORAGE_DRIVER).
//
// Uso: go run ./cmd/migrate
// Es idempotente: volver a ejecutarlo no modifica un esquema al día.
package main

import (
	"context"
	"time"

	"github.com/jhoicas/irelec-api/internal/infrastructure/storage"
	"github.com/jhoicas/irelec-api/pkg/config"
	"github.com/jhoicas/irelec-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name + "-migrate"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer store.Close()

	applied, err := store.Migrate(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("migrar esquema")
	}
	if len(applied) == 0 {
		log.Info().Str("storage", store.Driver).Msg("esquema ya estaba al día")
		return
	}
	log.Info().Str("storage", store.Driver).Strs("applied", applied).Msg("migraciones aplicadas")
}
