package product

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/stockalerts-api/internal/application/dto"
	"github.com/jhoicas/stockalerts-api/internal/domain"
	"github.com/jhoicas/stockalerts-api/internal/domain/entity"
	"github.com/jhoicas/stockalerts-api/internal/domain/repository"
)

const tracerName = "github.com/jhoicas/stockalerts-api/internal/application/product"

// CreateProductUseCase crea un producto y su fila de inventario inicial como una sola unidad atómica.
type CreateProductUseCase struct {
	txRunner TxRunner
	tracer   trace.Tracer
}

// Option configura el caso de uso.
type Option func(*CreateProductUseCase)

// WithTracerProvider usa tp en lugar del provider global.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(uc *CreateProductUseCase) { uc.tracer = tp.Tracer(tracerName) }
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(txRunner TxRunner, opts ...Option) *CreateProductUseCase {
	uc := &CreateProductUseCase{
		txRunner: txRunner,
		tracer:   otel.GetTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Create verifica el SKU, inserta el producto y luego su inventario en la misma transacción.
// SKU existente -> domain.ErrConflict sin escrituras. Cualquier otro fallo revierte ambas filas.
// La existencia de la bodega no se verifica: la FK de inventory es la única protección.
func (uc *CreateProductUseCase) Create(ctx context.Context, in dto.CreateProductInput) (*dto.ProductResponse, error) {
	ctx, span := uc.tracer.Start(ctx, "product.Create", trace.WithAttributes(
		attribute.String("product.sku", in.SKU),
		attribute.Int64("company.id", in.CompanyID),
		attribute.Int64("warehouse.id", in.WarehouseID),
	))
	defer span.End()

	product := &entity.Product{
		CompanyID:     in.CompanyID,
		ProductTypeID: in.ProductTypeID,
		Name:          in.Name,
		SKU:           in.SKU,
		Price:         in.Price,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
	) error {
		exists, err := productRepo.ExistsBySKU(ctx, in.SKU)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrConflict
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		return inventoryRepo.Create(ctx, &entity.Inventory{
			ProductID:   product.ID,
			WarehouseID: in.WarehouseID,
			Quantity:    in.InitialQuantity,
		})
	})
	if err != nil {
		span.RecordError(err)
		if !errors.Is(err, domain.ErrConflict) {
			span.SetStatus(codes.Error, "create product")
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int64("product.id", product.ID))
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		CompanyID:     p.CompanyID,
		ProductTypeID: p.ProductTypeID,
		Name:          p.Name,
		SKU:           p.SKU,
		Price:         p.Price,
	}
}
