package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockalerts-api/internal/domain/entity"
	"github.com/jhoicas/stockalerts-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (product_id, warehouse_id, quantity)
		VALUES ($1, $2, $3)`
	if _, err := r.q.Exec(ctx, query, inv.ProductID, inv.WarehouseID, inv.Quantity); err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}
