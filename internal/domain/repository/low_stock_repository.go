package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockalerts-api/internal/domain/entity"
)

// StockKey identifica una fila de inventario.
type StockKey struct {
	ProductID   int64
	WarehouseID int64
}

// LowStockCandidate fila de inventario de la empresa con stock bajo el umbral de su tipo de producto.
type LowStockCandidate struct {
	ProductID     int64
	ProductName   string
	SKU           string
	WarehouseID   int64
	WarehouseName string
	CurrentStock  int64
	Threshold     int64
}

// Key devuelve la clave (producto, bodega) del candidato.
func (c LowStockCandidate) Key() StockKey {
	return StockKey{ProductID: c.ProductID, WarehouseID: c.WarehouseID}
}

// SalesWindow agregado de ventas de un par (producto, bodega) dentro de la ventana.
type SalesWindow struct {
	Count     int64
	UnitsSold decimal.Decimal
}

// LowStockRepository consultas de solo lectura para las alertas de stock bajo.
type LowStockRepository interface {
	CompanyExists(ctx context.Context, companyID int64) (bool, error)

	// ListLowStockCandidates devuelve el inventario de las bodegas de la empresa con
	// quantity < low_stock_threshold, en orden estable (product_id, warehouse_id).
	ListLowStockCandidates(ctx context.Context, companyID int64) ([]LowStockCandidate, error)

	// RecentSales agrega ventas con sale_date >= since por cada par exacto solicitado.
	// Los pares sin ventas no aparecen en el mapa.
	RecentSales(ctx context.Context, keys []StockKey, since time.Time) (map[StockKey]SalesWindow, error)

	// PrimarySuppliers devuelve el proveedor principal por producto; con más de un
	// principal gana el de menor id. Productos sin principal no aparecen en el mapa.
	PrimarySuppliers(ctx context.Context, productIDs []int64) (map[int64]entity.Supplier, error)
}
