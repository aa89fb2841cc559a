package entity

import "time"

// Sale venta histórica de un producto desde una bodega. Solo lectura: alimenta la estimación de demanda.
type Sale struct {
	ProductID   int64
	WarehouseID int64
	Quantity    int64
	SaleDate    time.Time
}
