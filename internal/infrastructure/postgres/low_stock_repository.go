package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockalerts-api/internal/domain/entity"
	"github.com/jhoicas/stockalerts-api/internal/domain/repository"
)

var _ repository.LowStockRepository = (*LowStockRepo)(nil)

// LowStockRepo consultas de lectura para alertas de stock bajo.
type LowStockRepo struct {
	q Querier
}

// NewLowStockRepository construye el adaptador. Normalmente recibe una conexión adquirida del pool.
func NewLowStockRepository(q Querier) *LowStockRepo {
	return &LowStockRepo{q: q}
}

func (r *LowStockRepo) CompanyExists(ctx context.Context, companyID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM companies WHERE id = $1)`, companyID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check company: %w", err)
	}
	return exists, nil
}

// ListLowStockCandidates inventario bajo el umbral del tipo de producto, en todas las bodegas de la empresa.
func (r *LowStockRepo) ListLowStockCandidates(ctx context.Context, companyID int64) ([]repository.LowStockCandidate, error) {
	query := `
		SELECT
			i.product_id,
			p.name,
			p.sku,
			i.warehouse_id,
			w.name,
			i.quantity,
			pt.low_stock_threshold
		FROM inventory i
		JOIN products p       ON p.id = i.product_id
		JOIN warehouses w     ON w.id = i.warehouse_id
		JOIN product_types pt ON pt.id = p.product_type_id
		WHERE w.company_id = $1
		  AND i.quantity < pt.low_stock_threshold
		ORDER BY i.product_id, i.warehouse_id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list low stock candidates: %w", err)
	}
	defer rows.Close()

	var out []repository.LowStockCandidate
	for rows.Next() {
		var c repository.LowStockCandidate
		if err := rows.Scan(
			&c.ProductID, &c.ProductName, &c.SKU,
			&c.WarehouseID, &c.WarehouseName,
			&c.CurrentStock, &c.Threshold,
		); err != nil {
			return nil, fmt.Errorf("scan low stock candidate: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate low stock candidates: %w", err)
	}
	return out, nil
}

// RecentSales agrega ventas desde since para cada par (producto, bodega) en una sola consulta.
// El join contra unnest mantiene la semántica por par exacto.
func (r *LowStockRepo) RecentSales(ctx context.Context, keys []repository.StockKey, since time.Time) (map[repository.StockKey]repository.SalesWindow, error) {
	out := make(map[repository.StockKey]repository.SalesWindow, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	productIDs := lo.Map(keys, func(k repository.StockKey, _ int) int64 { return k.ProductID })
	warehouseIDs := lo.Map(keys, func(k repository.StockKey, _ int) int64 { return k.WarehouseID })

	query := `
		SELECT s.product_id, s.warehouse_id, COUNT(*), COALESCE(SUM(s.quantity), 0)
		FROM sales s
		JOIN unnest($1::bigint[], $2::bigint[]) AS k(product_id, warehouse_id)
		  ON s.product_id = k.product_id AND s.warehouse_id = k.warehouse_id
		WHERE s.sale_date >= $3
		GROUP BY s.product_id, s.warehouse_id`
	rows, err := r.q.Query(ctx, query, productIDs, warehouseIDs, since)
	if err != nil {
		return nil, fmt.Errorf("recent sales: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key   repository.StockKey
			count int64
			units decimal.Decimal
		)
		if err := rows.Scan(&key.ProductID, &key.WarehouseID, &count, &units); err != nil {
			return nil, fmt.Errorf("scan recent sales: %w", err)
		}
		out[key] = repository.SalesWindow{Count: count, UnitsSold: units}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent sales: %w", err)
	}
	return out, nil
}

// PrimarySuppliers proveedor principal por producto; empate -> menor id de proveedor.
func (r *LowStockRepo) PrimarySuppliers(ctx context.Context, productIDs []int64) (map[int64]entity.Supplier, error) {
	out := make(map[int64]entity.Supplier, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT DISTINCT ON (ps.product_id)
			ps.product_id, s.id, s.name, s.contact_email
		FROM product_suppliers ps
		JOIN suppliers s ON s.id = ps.supplier_id
		WHERE ps.product_id = ANY($1::bigint[])
		  AND ps.is_primary
		ORDER BY ps.product_id, s.id`
	rows, err := r.q.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("primary suppliers: %w", err)
	}

	type row struct {
		ProductID int64
		entity.Supplier
	}
	collected, err := pgx.CollectRows(rows, func(rr pgx.CollectableRow) (row, error) {
		var x row
		err := rr.Scan(&x.ProductID, &x.ID, &x.Name, &x.ContactEmail)
		return x, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan primary suppliers: %w", err)
	}
	for _, x := range collected {
		out[x.ProductID] = x.Supplier
	}
	return out, nil
}
