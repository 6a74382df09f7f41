package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jcastan/inventario-ventas/internal/application/dto"
)

var validate = newValidator()

// newValidator construye el validador reportando los nombres de campo tal como
// aparecen en el JSON, no como en Go.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// validateStruct valida un DTO y devuelve los errores de campo en español.
func validateStruct(in any) []dto.FieldError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []dto.FieldError{{Index: -1, Field: "", Message: "datos inválidos"}}
	}
	out := make([]dto.FieldError, 0, len(errs))
	for _, fe := range errs {
		out = append(out, dto.FieldError{Index: -1, Field: fe.Field(), Message: validationMessage(fe)})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio."
	case "min":
		return fmt.Sprintf("Debe tener al menos %s.", fe.Param())
	case "max":
		return fmt.Sprintf("Debe tener como máximo %s.", fe.Param())
	case "gt":
		return fmt.Sprintf("Debe ser mayor que %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Debe ser mayor o igual que %s.", fe.Param())
	case "email":
		return "Debe ser un email válido."
	case "oneof":
		return fmt.Sprintf("Debe ser uno de: %s.", fe.Param())
	}
	return "Valor inválido."
}
