package entity

// Company organización dueña de bodegas y productos.
type Company struct {
	ID   int64
	Name string
}
