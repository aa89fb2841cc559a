package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockalerts-api/internal/application/dto"
	"github.com/jhoicas/stockalerts-api/internal/application/product"
	"github.com/jhoicas/stockalerts-api/pkg/logger"
)

// ProductCreator lo implementa *product.CreateProductUseCase.
type ProductCreator interface {
	Create(ctx context.Context, in dto.CreateProductInput) (*dto.ProductResponse, error)
}

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc  ProductCreator
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc ProductCreator, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear producto con inventario inicial
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "name, sku, price, warehouse_id, initial_quantity, company_id, product_type_id"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in, err := product.ValidateCreateProduct(c.Body())
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateProductResponse{
		Message: "Producto creado",
		Product: *out,
	})
}
