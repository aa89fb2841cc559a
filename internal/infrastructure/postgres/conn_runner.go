package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockalerts-api/internal/application/alerts"
	"github.com/jhoicas/stockalerts-api/internal/domain/repository"
)

var _ alerts.ConnRunner = (*ConnRunner)(nil)

// ConnRunner presta una conexión del pool para una unidad de trabajo de solo lectura.
type ConnRunner struct {
	pool *pgxpool.Pool
}

// NewConnRunner construye el runner con el pool.
func NewConnRunner(pool *pgxpool.Pool) *ConnRunner {
	return &ConnRunner{pool: pool}
}

// Read adquiere una conexión, ejecuta fn con el repositorio de alertas atado a ella y la libera siempre.
func (r *ConnRunner) Read(ctx context.Context, fn func(repo repository.LowStockRepository) error) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	return fn(NewLowStockRepository(conn))
}
