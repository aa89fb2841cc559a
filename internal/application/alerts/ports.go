package alerts

import (
	"context"

	"github.com/jhoicas/stockalerts-api/internal/domain/repository"
)

// ConnRunner adquiere una conexión del pool, ejecuta fn con el repositorio atado a ella
// y la libera en toda salida. Sin transacción: las lecturas no comparten snapshot.
type ConnRunner interface {
	Read(ctx context.Context, fn func(repo repository.LowStockRepository) error) error
}
