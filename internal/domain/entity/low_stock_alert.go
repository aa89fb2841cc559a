package entity

// LowStockAlert alerta derivada por (producto, bodega): stock bajo el umbral y ventas recientes.
// Se calcula en cada petición y no se persiste.
type LowStockAlert struct {
	ProductID         int64
	ProductName       string
	SKU               string
	WarehouseID       int64
	WarehouseName     string
	CurrentStock      int64
	Threshold         int64
	DaysUntilStockout *int64    // nil = no determinable (ventas recientes con total 0)
	Supplier          *Supplier // nil = sin proveedor principal
}
