package product

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockalerts-api/internal/application/dto"
	"github.com/jhoicas/stockalerts-api/internal/domain"
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindNumber
	kindInteger
	kindWholeNumber // número sin parte decimal (cantidades)
)

// createProductSchema campos obligatorios del alta y su tipo JSON.
var createProductSchema = []struct {
	name string
	kind fieldKind
}{
	{"name", kindText},
	{"sku", kindText},
	{"price", kindNumber},
	{"warehouse_id", kindInteger},
	{"initial_quantity", kindWholeNumber},
	{"company_id", kindInteger},
	{"product_type_id", kindInteger},
}

// createProductRules reglas de negocio que se aplican tras validar tipos.
type createProductRules struct {
	Name            string          `json:"name" validate:"required,max=200"`
	SKU             string          `json:"sku" validate:"required,max=100"`
	Price           decimal.Decimal `json:"price" validate:"gte=0,lt=10000000000"` // NUMERIC(12,2)
	WarehouseID     int64           `json:"warehouse_id" validate:"gt=0"`
	InitialQuantity int64           `json:"initial_quantity" validate:"gte=0"`
	CompanyID       int64           `json:"company_id" validate:"gt=0"`
	ProductTypeID   int64           `json:"product_type_id" validate:"gt=0"`
}

var (
	validate    = newValidator()
	maxInt64Dec = decimal.NewFromInt(math.MaxInt64)
	minInt64Dec = decimal.NewFromInt(math.MinInt64)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportar errores con el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// ValidateCreateProduct valida presencia y tipo de cada campo del cuerpo crudo y luego
// las reglas de negocio. No tiene efectos secundarios. Devuelve *domain.ValidationError
// con todos los campos inválidos ordenados por nombre.
func ValidateCreateProduct(raw []byte) (dto.CreateProductInput, error) {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil || body == nil {
		return dto.CreateProductInput{}, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "body", Reason: "se espera un objeto JSON"},
		}}
	}

	var (
		fieldErrs []domain.FieldError
		texts     = make(map[string]string)
		numbers   = make(map[string]decimal.Decimal)
	)
	for _, f := range createProductSchema {
		value, ok := body[f.name]
		if !ok || isNull(value) {
			fieldErrs = append(fieldErrs, domain.FieldError{Field: f.name, Reason: "requerido"})
			continue
		}
		if f.kind == kindText {
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				fieldErrs = append(fieldErrs, domain.FieldError{Field: f.name, Reason: "debe ser texto"})
				continue
			}
			texts[f.name] = strings.TrimSpace(s)
			continue
		}
		d, reason := parseNumber(value, f.kind)
		if reason != "" {
			fieldErrs = append(fieldErrs, domain.FieldError{Field: f.name, Reason: reason})
			continue
		}
		numbers[f.name] = d
	}

	rules := createProductRules{
		Name:            texts["name"],
		SKU:             texts["sku"],
		Price:           numbers["price"],
		WarehouseID:     numbers["warehouse_id"].IntPart(),
		InitialQuantity: numbers["initial_quantity"].IntPart(),
		CompanyID:       numbers["company_id"].IntPart(),
		ProductTypeID:   numbers["product_type_id"].IntPart(),
	}
	fieldErrs = append(fieldErrs, ruleErrors(rules, fieldErrs)...)

	if len(fieldErrs) > 0 {
		sort.SliceStable(fieldErrs, func(i, j int) bool { return fieldErrs[i].Field < fieldErrs[j].Field })
		return dto.CreateProductInput{}, &domain.ValidationError{Fields: fieldErrs}
	}

	return dto.CreateProductInput{
		Name:            rules.Name,
		SKU:             rules.SKU,
		Price:           rules.Price,
		WarehouseID:     rules.WarehouseID,
		InitialQuantity: rules.InitialQuantity,
		CompanyID:       rules.CompanyID,
		ProductTypeID:   rules.ProductTypeID,
	}, nil
}

// ruleErrors corre el validador y descarta los campos que ya fallaron por tipo.
func ruleErrors(rules createProductRules, typeErrs []domain.FieldError) []domain.FieldError {
	err := validate.Struct(rules)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []domain.FieldError{{Field: "body", Reason: err.Error()}}
	}
	failed := make(map[string]bool, len(typeErrs))
	for _, fe := range typeErrs {
		failed[fe.Field] = true
	}
	var out []domain.FieldError
	for _, fe := range verrs {
		if failed[fe.Field()] {
			continue
		}
		out = append(out, domain.FieldError{Field: fe.Field(), Reason: ruleReason(fe)})
	}
	return out
}

func ruleReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "requerido"
	case "gt":
		return "debe ser mayor que " + fe.Param()
	case "gte":
		return "debe ser mayor o igual a " + fe.Param()
	case "lt":
		return "debe ser menor que " + fe.Param()
	case "max":
		return fmt.Sprintf("máximo %s caracteres", fe.Param())
	default:
		return "inválido"
	}
}

func parseNumber(value json.RawMessage, kind fieldKind) (decimal.Decimal, string) {
	dec := json.NewDecoder(bytes.NewReader(value))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return decimal.Zero, "debe ser numérico"
	}
	n, ok := v.(json.Number)
	if !ok {
		return decimal.Zero, "debe ser numérico"
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, "debe ser numérico"
	}
	switch kind {
	case kindInteger:
		if !d.IsInteger() || d.GreaterThan(maxInt64Dec) || d.LessThan(minInt64Dec) {
			return decimal.Zero, "debe ser un entero"
		}
	case kindWholeNumber:
		if !d.IsInteger() || d.GreaterThan(maxInt64Dec) || d.LessThan(minInt64Dec) {
			return decimal.Zero, "debe ser un número sin decimales"
		}
	}
	return d, ""
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
