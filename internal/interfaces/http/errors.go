package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockalerts-api/internal/application/dto"
	"github.com/jhoicas/stockalerts-api/internal/domain"
	"github.com/jhoicas/stockalerts-api/pkg/logger"
)

// Códigos estables de error expuestos al cliente.
const (
	CodeValidation   = "VALIDATION"
	CodeInvalidID    = "INVALID_ID"
	CodeDuplicate    = "DUPLICATE"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL"
	CodeMissingToken = "MISSING_TOKEN"
	CodeInvalidToken = "INVALID_TOKEN"
)

const internalMessage = "error interno del servidor"

// respondError traduce errores de dominio a HTTP. Lo que no es de dominio se registra
// y sale como 500 genérico: el texto del motor de base de datos nunca llega al cliente.
func respondError(c *fiber.Ctx, log *logger.Logger, err error, notFoundMsg string) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:  "datos de entrada inválidos",
			Code:   CodeValidation,
			Fields: vErr.Fields,
		})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: "ya existe un producto con ese SKU",
			Code:  CodeDuplicate,
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: notFoundMsg,
			Code:  CodeNotFound,
		})
	}

	log.Request(GetRequestID(c)).Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: internalMessage,
		Code:  CodeInternal,
	})
}

// ErrorHandler manejador global de Fiber: errores de ruteo (404/405 de fiber.Error) y
// panics recuperados salen con el mismo cuerpo {error, code}.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message})
		}
		return respondError(c, log, err, "")
	}
}
