package entity

// Inventory cantidad disponible de un producto en una bodega (quantity >= 0).
type Inventory struct {
	ProductID   int64
	WarehouseID int64
	Quantity    int64
}
