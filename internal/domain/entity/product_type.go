package entity

// ProductType agrupa productos que comparten umbral de stock bajo.
type ProductType struct {
	ID                int64
	Name              string
	LowStockThreshold int64 // stock < umbral dispara alerta
}
