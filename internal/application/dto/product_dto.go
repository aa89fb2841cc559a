package dto

import "github.com/shopspring/decimal"

// CreateProductInput petición de alta de producto ya validada y normalizada.
type CreateProductInput struct {
	Name            string
	SKU             string
	Price           decimal.Decimal
	WarehouseID     int64
	InitialQuantity int64
	CompanyID       int64
	ProductTypeID   int64
}

// ProductResponse fila completa del producto creado.
type ProductResponse struct {
	ID            int64           `json:"id"`
	CompanyID     int64           `json:"company_id"`
	ProductTypeID int64           `json:"product_type_id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Price         decimal.Decimal `json:"price"`
}

// CreateProductResponse cuerpo del 201 de POST /api/products.
type CreateProductResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}
