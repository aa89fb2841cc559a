package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockalerts-api/internal/domain"
	"github.com/jhoicas/stockalerts-api/internal/domain/entity"
	"github.com/jhoicas/stockalerts-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// ExistsBySKU informa si ya hay un producto con ese SKU.
func (r *ProductRepo) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1)`, sku).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check product sku: %w", err)
	}
	return exists, nil
}

// Create inserta el producto y toma el id generado. El precio vuelve normalizado a NUMERIC(12,2).
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (company_id, product_type_id, name, sku, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, price`
	err := r.q.QueryRow(ctx, query,
		product.CompanyID, product.ProductTypeID, product.Name, product.SKU, product.Price,
	).Scan(&product.ID, &product.Price)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}
