package dto

import "github.com/jhoicas/stockalerts-api/internal/domain"

// ErrorResponse cuerpo de error HTTP. Error es el mensaje legible; Code el código estable.
type ErrorResponse struct {
	Error  string              `json:"error"`
	Code   string              `json:"code,omitempty"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}
