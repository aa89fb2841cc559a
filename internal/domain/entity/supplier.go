package entity

// Supplier proveedor de reposición.
type Supplier struct {
	ID           int64
	Name         string
	ContactEmail *string // nil = sin correo registrado
}

// ProductSupplier vínculo producto-proveedor; IsPrimary marca la fuente de reposición por defecto.
type ProductSupplier struct {
	SupplierID int64
	ProductID  int64
	IsPrimary  bool
}
