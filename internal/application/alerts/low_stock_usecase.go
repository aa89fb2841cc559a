package alerts

import (
	"context"
	"errors"
	"time"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/stockalerts-api/internal/application/dto"
	"github.com/jhoicas/stockalerts-api/internal/domain"
	"github.com/jhoicas/stockalerts-api/internal/domain/entity"
	"github.com/jhoicas/stockalerts-api/internal/domain/inventory"
	"github.com/jhoicas/stockalerts-api/internal/domain/repository"
)

const tracerName = "github.com/jhoicas/stockalerts-api/internal/application/alerts"

// LowStockUseCase calcula las alertas de stock bajo de una empresa.
// Alerta = (producto, bodega) con stock < umbral del tipo de producto y ventas en los últimos 30 días,
// con proyección de días hasta agotarse y contacto del proveedor principal.
type LowStockUseCase struct {
	reader ConnRunner
	tracer trace.Tracer
	now    func() time.Time
}

// Option configura el caso de uso.
type Option func(*LowStockUseCase)

// WithClock fija el reloj de evaluación (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *LowStockUseCase) { uc.now = now }
}

// WithTracerProvider usa tp en lugar del provider global.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(uc *LowStockUseCase) { uc.tracer = tp.Tracer(tracerName) }
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(reader ConnRunner, opts ...Option) *LowStockUseCase {
	uc := &LowStockUseCase{
		reader: reader,
		tracer: otel.GetTracerProvider().Tracer(tracerName),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// GetLowStockAlerts devuelve las alertas en el orden en que se obtuvieron los candidatos.
// Empresa inexistente -> domain.ErrNotFound antes de cualquier consulta de alertas.
// Cualquier error de consulta aborta la petición completa: nunca hay listas parciales.
func (uc *LowStockUseCase) GetLowStockAlerts(ctx context.Context, companyID int64) (*dto.LowStockAlertsResponse, error) {
	ctx, span := uc.tracer.Start(ctx, "alerts.GetLowStockAlerts",
		trace.WithAttributes(attribute.Int64("company.id", companyID)))
	defer span.End()

	var alerts []entity.LowStockAlert
	err := uc.reader.Read(ctx, func(repo repository.LowStockRepository) error {
		exists, err := repo.CompanyExists(ctx, companyID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}

		// 1. Inventario bajo el umbral de su tipo de producto
		candidates, err := repo.ListLowStockCandidates(ctx, companyID)
		if err != nil {
			return err
		}
		span.SetAttributes(attribute.Int("alerts.candidates", len(candidates)))
		if len(candidates) == 0 {
			return nil
		}

		// 2. Ventas recientes por par exacto (producto, bodega)
		since := uc.now().AddDate(0, 0, -inventory.SalesWindowDays)
		keys := lo.Map(candidates, func(c repository.LowStockCandidate, _ int) repository.StockKey {
			return c.Key()
		})
		sales, err := repo.RecentSales(ctx, keys, since)
		if err != nil {
			return err
		}

		// 3. Sin ventas recientes no hay alerta (producto quieto o descontinuado)
		active := lo.Filter(candidates, func(c repository.LowStockCandidate, _ int) bool {
			return sales[c.Key()].Count > 0
		})
		if len(active) == 0 {
			return nil
		}

		// 4. Proveedor principal por producto
		productIDs := lo.Uniq(lo.Map(active, func(c repository.LowStockCandidate, _ int) int64 {
			return c.ProductID
		}))
		suppliers, err := repo.PrimarySuppliers(ctx, productIDs)
		if err != nil {
			return err
		}

		alerts = make([]entity.LowStockAlert, 0, len(active))
		for _, c := range active {
			alerts = append(alerts, buildAlert(c, sales[c.Key()], suppliers))
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		if !errors.Is(err, domain.ErrNotFound) {
			span.SetStatus(codes.Error, "low stock alerts")
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("alerts.total", len(alerts)))
	return toAlertsResponse(alerts), nil
}

func buildAlert(c repository.LowStockCandidate, w repository.SalesWindow, suppliers map[int64]entity.Supplier) entity.LowStockAlert {
	alert := entity.LowStockAlert{
		ProductID:         c.ProductID,
		ProductName:       c.ProductName,
		SKU:               c.SKU,
		WarehouseID:       c.WarehouseID,
		WarehouseName:     c.WarehouseName,
		CurrentStock:      c.CurrentStock,
		Threshold:         c.Threshold,
		DaysUntilStockout: inventory.DaysUntilStockout(c.CurrentStock, w.UnitsSold, inventory.SalesWindowDays),
	}
	if s, ok := suppliers[c.ProductID]; ok {
		alert.Supplier = &s
	}
	return alert
}

func toAlertsResponse(alerts []entity.LowStockAlert) *dto.LowStockAlertsResponse {
	items := make([]dto.LowStockAlertDTO, 0, len(alerts))
	for _, a := range alerts {
		item := dto.LowStockAlertDTO{
			ProductID:         a.ProductID,
			ProductName:       a.ProductName,
			SKU:               a.SKU,
			WarehouseID:       a.WarehouseID,
			WarehouseName:     a.WarehouseName,
			CurrentStock:      a.CurrentStock,
			Threshold:         a.Threshold,
			DaysUntilStockout: a.DaysUntilStockout,
		}
		if a.Supplier != nil {
			item.Supplier = &dto.SupplierDTO{
				ID:           a.Supplier.ID,
				Name:         a.Supplier.Name,
				ContactEmail: a.Supplier.ContactEmail,
			}
		}
		items = append(items, item)
	}
	return &dto.LowStockAlertsResponse{Alerts: items, TotalAlerts: len(items)}
}
