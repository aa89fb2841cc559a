package dto

// SupplierDTO contacto del proveedor principal.
type SupplierDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ContactEmail *string `json:"contact_email"`
}

// LowStockAlertDTO alerta de stock bajo por (producto, bodega).
type LowStockAlertDTO struct {
	ProductID         int64        `json:"product_id"`
	ProductName       string       `json:"product_name"`
	SKU               string       `json:"sku"`
	WarehouseID       int64        `json:"warehouse_id"`
	WarehouseName     string       `json:"warehouse_name"`
	CurrentStock      int64        `json:"current_stock"`
	Threshold         int64        `json:"threshold"`
	DaysUntilStockout *int64       `json:"days_until_stockout"`
	Supplier          *SupplierDTO `json:"supplier"`
}

// LowStockAlertsResponse cuerpo de GET /api/companies/:companyId/alerts/low-stock.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
