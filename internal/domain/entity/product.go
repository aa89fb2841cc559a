package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo de una empresa.
// El stock vive por bodega en Inventory; todo producto nace con al menos una fila de inventario.
type Product struct {
	ID            int64
	CompanyID     int64
	ProductTypeID int64
	Name          string
	SKU           string // único en toda la base
	Price         decimal.Decimal
}
