package repository

import (
	"context"

	"github.com/jhoicas/stockalerts-api/internal/domain/entity"
)

// InventoryRepository define el puerto para las filas de inventario (producto, bodega).
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
}
