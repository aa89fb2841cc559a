package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrations embed.FS

const demoSeedFile = "migrations/seed_demo.sql"

// ApplySchema ejecuta en orden los archivos NNN_*.sql embebidos. Son idempotentes (IF NOT EXISTS).
func ApplySchema(ctx context.Context, q Querier) error {
	names, err := fs.Glob(migrations, "migrations/[0-9]*.sql")
	if err != nil {
		return fmt.Errorf("listar migraciones: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := execFile(ctx, q, name); err != nil {
			return err
		}
	}
	return nil
}

// SeedDemo carga los datos de demostración (una empresa con stock bajo y ventas recientes).
func SeedDemo(ctx context.Context, q Querier) error {
	return execFile(ctx, q, demoSeedFile)
}

// Reset elimina todos los datos y reinicia las secuencias. Solo para pruebas y seed local.
func Reset(ctx context.Context, q Querier) error {
	_, err := q.Exec(ctx, `
		TRUNCATE sales, product_suppliers, suppliers, inventory, products,
		         product_types, warehouses, companies
		RESTART IDENTITY CASCADE`)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

func execFile(ctx context.Context, q Querier, name string) error {
	raw, err := migrations.ReadFile(name)
	if err != nil {
		return fmt.Errorf("leer %s: %w", name, err)
	}
	sql := strings.TrimSpace(string(raw))
	if sql == "" {
		return nil
	}
	// Sin argumentos pgx usa el protocolo simple y acepta varias sentencias.
	if _, err := q.Exec(ctx, sql); err != nil {
		return fmt.Errorf("ejecutar %s: %w", name, err)
	}
	return nil
}
