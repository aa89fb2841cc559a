package repository

import (
	"context"

	"github.com/jhoicas/stockalerts-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// ExistsBySKU informa si ya existe un producto con ese SKU.
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	// Create inserta el producto y asigna product.ID con el identificador generado.
	// Devuelve domain.ErrConflict si el SKU viola la restricción única.
	Create(ctx context.Context, product *entity.Product) error
}
