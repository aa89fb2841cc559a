package entity

// Warehouse bodega de una empresa.
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
}
