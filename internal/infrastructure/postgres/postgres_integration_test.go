package postgres

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockalerts-api/internal/application/alerts"
	"github.com/jhoicas/stockalerts-api/internal/application/dto"
	"github.com/jhoicas/stockalerts-api/internal/application/product"
	"github.com/jhoicas/stockalerts-api/internal/domain"
	"github.com/jhoicas/stockalerts-api/internal/domain/entity"
	"github.com/jhoicas/stockalerts-api/pkg/config"
)

// testPool abre una base real; sin TEST_DATABASE_URL la prueba se omite.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido; se omiten pruebas de integración")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: url, MaxConns: 10})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, ApplySchema(ctx, pool))
	require.NoError(t, Reset(ctx, pool))
	return pool
}

func mustExec(t *testing.T, pool *pgxpool.Pool, sql string, args ...any) {
	t.Helper()
	_, err := pool.Exec(context.Background(), sql, args...)
	require.NoError(t, err)
}

func count(t *testing.T, pool *pgxpool.Pool, sql string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(), sql, args...).Scan(&n))
	return n
}

// fixtures datos de prueba expresados con las entidades del dominio.
type fixtures struct {
	companies        []entity.Company
	warehouses       []entity.Warehouse
	productTypes     []entity.ProductType
	products         []entity.Product
	inventory        []entity.Inventory
	suppliers        []entity.Supplier
	productSuppliers []entity.ProductSupplier
	sales            []entity.Sale
}

func (f fixtures) insert(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	for _, c := range f.companies {
		mustExec(t, pool, `INSERT INTO companies (id, name) VALUES ($1, $2)`, c.ID, c.Name)
	}
	for _, w := range f.warehouses {
		mustExec(t, pool, `INSERT INTO warehouses (id, company_id, name) VALUES ($1, $2, $3)`, w.ID, w.CompanyID, w.Name)
	}
	for _, pt := range f.productTypes {
		mustExec(t, pool, `INSERT INTO product_types (id, name, low_stock_threshold) VALUES ($1, $2, $3)`, pt.ID, pt.Name, pt.LowStockThreshold)
	}
	for _, p := range f.products {
		mustExec(t, pool, `INSERT INTO products (id, company_id, product_type_id, name, sku, price) VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, p.CompanyID, p.ProductTypeID, p.Name, p.SKU, p.Price)
	}
	for _, i := range f.inventory {
		mustExec(t, pool, `INSERT INTO inventory (product_id, warehouse_id, quantity) VALUES ($1, $2, $3)`, i.ProductID, i.WarehouseID, i.Quantity)
	}
	for _, s := range f.suppliers {
		mustExec(t, pool, `INSERT INTO suppliers (id, name, contact_email) VALUES ($1, $2, $3)`, s.ID, s.Name, s.ContactEmail)
	}
	for _, ps := range f.productSuppliers {
		mustExec(t, pool, `INSERT INTO product_suppliers (supplier_id, product_id, is_primary) VALUES ($1, $2, $3)`, ps.SupplierID, ps.ProductID, ps.IsPrimary)
	}
	for _, s := range f.sales {
		mustExec(t, pool, `INSERT INTO sales (product_id, warehouse_id, quantity, sale_date) VALUES ($1, $2, $3, $4)`, s.ProductID, s.WarehouseID, s.Quantity, s.SaleDate)
	}
}

var catalog = fixtures{
	companies:    []entity.Company{{ID: 1, Name: "Acme"}, {ID: 2, Name: "Otra"}},
	warehouses:   []entity.Warehouse{{ID: 1, CompanyID: 1, Name: "Main"}, {ID: 2, CompanyID: 1, Name: "Norte"}, {ID: 3, CompanyID: 2, Name: "Ajena"}},
	productTypes: []entity.ProductType{{ID: 1, Name: "Insumos", LowStockThreshold: 20}},
}

func TestCreateProduct_Integration(t *testing.T) {
	pool := testPool(t)
	catalog.insert(t, pool)
	ctx := context.Background()
	uc := product.NewCreateProductUseCase(NewTxRunner(pool))

	in := dto.CreateProductInput{
		Name: "Widget A", SKU: "WID-001", Price: decimal.RequireFromString("12.5"),
		WarehouseID: 1, InitialQuantity: 10, CompanyID: 1, ProductTypeID: 1,
	}

	t.Run("crea producto e inventario", func(t *testing.T) {
		out, err := uc.Create(ctx, in)
		require.NoError(t, err)
		assert.Positive(t, out.ID)
		assert.True(t, out.Price.Equal(decimal.RequireFromString("12.50")))
		assert.Equal(t, 1, count(t, pool, `SELECT COUNT(*) FROM inventory WHERE product_id = $1 AND warehouse_id = 1 AND quantity = 10`, out.ID))
	})

	t.Run("sku duplicado no escribe nada", func(t *testing.T) {
		dup := in
		dup.Name = "Otro nombre"
		_, err := uc.Create(ctx, dup)
		require.ErrorIs(t, err, domain.ErrConflict)
		assert.Equal(t, 1, count(t, pool, `SELECT COUNT(*) FROM products`))
		assert.Equal(t, 1, count(t, pool, `SELECT COUNT(*) FROM inventory`))
	})

	t.Run("fallo de inventario revierte el producto", func(t *testing.T) {
		orphan := in
		orphan.SKU = "WID-404"
		orphan.WarehouseID = 999
		_, err := uc.Create(ctx, orphan)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrConflict)
		assert.Zero(t, count(t, pool, `SELECT COUNT(*) FROM products WHERE sku = 'WID-404'`))
	})

	t.Run("violación única concurrente es conflicto", func(t *testing.T) {
		// Sin pre-check: el repositorio traduce 23505 directamente.
		p := NewProductRepository(pool)
		dupe := &entity.Product{CompanyID: 1, ProductTypeID: 1, Name: "x", SKU: "WID-001", Price: decimal.Zero}
		require.ErrorIs(t, p.Create(ctx, dupe), domain.ErrConflict)
	})
}

func TestLowStockAlerts_Integration(t *testing.T) {
	pool := testPool(t)
	catalog.insert(t, pool)

	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	ago := func(days int) time.Time { return now.AddDate(0, 0, -days) }
	price := decimal.NewFromInt(10)

	fixtures{
		products: []entity.Product{
			{ID: 1, CompanyID: 1, ProductTypeID: 1, Name: "Widget A", SKU: "WID-001", Price: price},
			{ID: 2, CompanyID: 1, ProductTypeID: 1, Name: "Widget B", SKU: "WID-002", Price: price},
			{ID: 3, CompanyID: 1, ProductTypeID: 1, Name: "Widget C", SKU: "WID-003", Price: price},
			{ID: 4, CompanyID: 2, ProductTypeID: 1, Name: "Ajeno", SKU: "AJE-001", Price: price},
			{ID: 5, CompanyID: 1, ProductTypeID: 1, Name: "Devuelto", SKU: "DEV-001", Price: price},
			{ID: 6, CompanyID: 1, ProductTypeID: 1, Name: "Borde", SKU: "BOR-001", Price: price},
			{ID: 7, CompanyID: 1, ProductTypeID: 1, Name: "Fuera", SKU: "FUE-001", Price: price},
		},
		inventory: []entity.Inventory{
			{ProductID: 1, WarehouseID: 1, Quantity: 5},
			{ProductID: 1, WarehouseID: 2, Quantity: 50},
			{ProductID: 2, WarehouseID: 1, Quantity: 0},
			{ProductID: 2, WarehouseID: 2, Quantity: 3},
			{ProductID: 3, WarehouseID: 1, Quantity: 7},
			{ProductID: 4, WarehouseID: 3, Quantity: 1},
			{ProductID: 5, WarehouseID: 1, Quantity: 4},
			{ProductID: 6, WarehouseID: 1, Quantity: 2},
			{ProductID: 7, WarehouseID: 1, Quantity: 2},
		},
		suppliers: []entity.Supplier{
			{ID: 7, Name: "Supplier Corp", ContactEmail: lo.ToPtr("orders@supplier.com")},
			{ID: 3, Name: "Low Id"},
			{ID: 9, Name: "No primario", ContactEmail: lo.ToPtr("x@y.z")},
			{ID: 11, Name: "Ferretería Andina", ContactEmail: lo.ToPtr("ventas@andina.co")},
		},
		productSuppliers: []entity.ProductSupplier{
			{SupplierID: 7, ProductID: 1, IsPrimary: true},
			{SupplierID: 3, ProductID: 1, IsPrimary: true},
			{SupplierID: 9, ProductID: 2, IsPrimary: false},
			{SupplierID: 11, ProductID: 6, IsPrimary: true},
		},
		sales: []entity.Sale{
			// (1,1): 10 unidades en la ventana -> 5*30/10 = 15 días; la venta de hace 31 días no cuenta.
			{ProductID: 1, WarehouseID: 1, Quantity: 4, SaleDate: ago(3)},
			{ProductID: 1, WarehouseID: 1, Quantity: 6, SaleDate: ago(29)},
			{ProductID: 1, WarehouseID: 1, Quantity: 100, SaleDate: ago(31)},
			// (2,2): 9 unidades -> 3*30/9 = 10 días. (2,1) sin ventas propias: se excluye.
			{ProductID: 2, WarehouseID: 2, Quantity: 9, SaleDate: ago(1)},
			// (3,1) solo ventas viejas: se excluye.
			{ProductID: 3, WarehouseID: 1, Quantity: 2, SaleDate: ago(40)},
			// (5,1): una venta en cero y una devolución que anula otra venta: total 0 -> sin proyección.
			{ProductID: 5, WarehouseID: 1, Quantity: 3, SaleDate: ago(5)},
			{ProductID: 5, WarehouseID: 1, Quantity: -3, SaleDate: ago(4)},
			{ProductID: 5, WarehouseID: 1, Quantity: 0, SaleDate: ago(2)},
			// (6,1): única venta justo en el límite de la ventana; cuenta -> 2*30/6 = 10 días.
			{ProductID: 6, WarehouseID: 1, Quantity: 6, SaleDate: ago(30)},
			// (7,1): única venta un segundo antes del límite; no cuenta.
			{ProductID: 7, WarehouseID: 1, Quantity: 6, SaleDate: ago(30).Add(-time.Second)},
			// Otra empresa.
			{ProductID: 4, WarehouseID: 3, Quantity: 1, SaleDate: ago(1)},
		},
	}.insert(t, pool)

	uc := alerts.NewLowStockUseCase(NewConnRunner(pool), alerts.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	t.Run("alertas por par con proveedor principal", func(t *testing.T) {
		out, err := uc.GetLowStockAlerts(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, 4, out.TotalAlerts)
		require.Len(t, out.Alerts, 4)

		first := out.Alerts[0]
		assert.Equal(t, int64(1), first.ProductID)
		assert.Equal(t, int64(1), first.WarehouseID)
		assert.Equal(t, "Main", first.WarehouseName)
		assert.Equal(t, int64(5), first.CurrentStock)
		assert.Equal(t, int64(20), first.Threshold)
		require.NotNil(t, first.DaysUntilStockout)
		assert.Equal(t, int64(15), *first.DaysUntilStockout)
		require.NotNil(t, first.Supplier)
		assert.Equal(t, int64(3), first.Supplier.ID, "empate de principales: gana el menor id")
		assert.Nil(t, first.Supplier.ContactEmail, "correo NULL se conserva como nil")

		second := out.Alerts[1]
		assert.Equal(t, int64(2), second.ProductID)
		assert.Equal(t, int64(2), second.WarehouseID)
		require.NotNil(t, second.DaysUntilStockout)
		assert.Equal(t, int64(10), *second.DaysUntilStockout)
		assert.Nil(t, second.Supplier)

		returned := out.Alerts[2]
		assert.Equal(t, int64(5), returned.ProductID)
		assert.Nil(t, returned.DaysUntilStockout, "ventas recientes con total 0 no son proyectables")

		boundary := out.Alerts[3]
		assert.Equal(t, int64(6), boundary.ProductID, "la venta en now-30d entra en la ventana")
		require.NotNil(t, boundary.DaysUntilStockout)
		assert.Equal(t, int64(10), *boundary.DaysUntilStockout)
		require.NotNil(t, boundary.Supplier)
		require.NotNil(t, boundary.Supplier.ContactEmail)
		assert.Equal(t, "ventas@andina.co", *boundary.Supplier.ContactEmail)
	})

	t.Run("correo NULL sale como null en JSON", func(t *testing.T) {
		out, err := uc.GetLowStockAlerts(ctx, 1)
		require.NoError(t, err)
		raw, err := json.Marshal(out.Alerts[0].Supplier)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id": 3, "name": "Low Id", "contact_email": null}`, string(raw))
	})

	t.Run("empresa sin alertas devuelve lista vacía", func(t *testing.T) {
		mustExec(t, pool, `INSERT INTO companies (id, name) VALUES (3, 'Vacía')`)
		out, err := uc.GetLowStockAlerts(ctx, 3)
		require.NoError(t, err)
		assert.NotNil(t, out.Alerts)
		assert.Zero(t, out.TotalAlerts)
	})

	t.Run("empresa inexistente", func(t *testing.T) {
		_, err := uc.GetLowStockAlerts(ctx, 404)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("la conexión vuelve al pool", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			_, err := uc.GetLowStockAlerts(ctx, 1)
			require.NoError(t, err)
		}
		assert.Zero(t, pool.Stat().AcquiredConns())
	})
}

func TestSeedDemo_Idempotente(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	require.NoError(t, SeedDemo(ctx, pool))
	require.NoError(t, SeedDemo(ctx, pool))

	assert.Equal(t, 4, count(t, pool, `SELECT COUNT(*) FROM sales`))
	assert.Equal(t, 3, count(t, pool, `SELECT COUNT(*) FROM products`))
}
