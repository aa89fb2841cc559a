package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockalerts-api/internal/application/dto"
	"github.com/jhoicas/stockalerts-api/pkg/logger"
)

// LowStockAlerter lo implementa *alerts.LowStockUseCase.
type LowStockAlerter interface {
	GetLowStockAlerts(ctx context.Context, companyID int64) (*dto.LowStockAlertsResponse, error)
}

// AlertHandler expone las alertas de stock bajo por empresa.
type AlertHandler struct {
	uc  LowStockAlerter
	log *logger.Logger
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc LowStockAlerter, log *logger.Logger) *AlertHandler {
	return &AlertHandler{uc: uc, log: log}
}

// LowStock godoc
// @Summary      Alertas de stock bajo
// @Description  Inventario bajo el umbral del tipo de producto con ventas en los últimos 30 días.
// @Tags         alerts
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyId}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID, err := strconv.ParseInt(c.Params("companyId"), 10, 64)
	if err != nil || companyID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "companyId debe ser un entero positivo",
			Code:  CodeInvalidID,
		})
	}
	out, err := h.uc.GetLowStockAlerts(c.UserContext(), companyID)
	if err != nil {
		return respondError(c, h.log, err, "empresa no encontrada")
	}
	return c.JSON(out)
}
