// seed aplica el esquema embebido y, opcionalmente, datos de demostración.
//
// Uso: go run ./cmd/seed [-demo] [-reset]
// Usa la misma configuración que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"flag"
	"time"

	"github.com/jhoicas/stockalerts-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockalerts-api/pkg/config"
	"github.com/jhoicas/stockalerts-api/pkg/logger"
)

func main() {
	demo := flag.Bool("demo", false, "cargar datos de demostración")
	reset := flag.Bool("reset", false, "vaciar todas las tablas antes de sembrar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name}).Component("seed")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.ApplySchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Msg("esquema aplicado")

	if *reset {
		if err := postgres.Reset(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("vaciar tablas")
		}
		log.Info().Msg("tablas vaciadas")
	}
	if *demo {
		if err := postgres.SeedDemo(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("datos de demostración")
		}
		log.Info().Msg("datos de demostración cargados: GET /api/companies/1/alerts/low-stock")
	}
}
