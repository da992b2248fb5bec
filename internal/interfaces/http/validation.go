package http

import (
	"fmt"
	"regexp"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/desafio/contas-api/internal/application/dto"
)

// Período de referencia de una cuenta: mes de dos dígitos (01-12), guion, año de cuatro.
var referencePattern = regexp.MustCompile(`^(0[1-9]|1[0-2])-\d{4}$`)

// RequestValidator valida los bodies de entrada con go-playground/validator
// y traduce las violaciones a mensajes legibles.
type RequestValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewRequestValidator construye el validador con las traducciones por defecto
// y el tag mmyyyy para el período de referencia.
func NewRequestValidator() (*RequestValidator, error) {
	validate := validator.New()

	english := en.New()
	uni := ut.New(english, english)
	translator, ok := uni.GetTranslator("en")
	if !ok {
		return nil, fmt.Errorf("traductor en no disponible")
	}
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, fmt.Errorf("registrar traducciones: %w", err)
	}

	if err := validate.RegisterValidation("mmyyyy", func(fl validator.FieldLevel) bool {
		return referencePattern.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("registrar validación mmyyyy: %w", err)
	}
	err := validate.RegisterTranslation("mmyyyy", translator,
		func(ut ut.Translator) error {
			return ut.Add("mmyyyy", "{0} must use the MM-YYYY format", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("mmyyyy", fe.Field())
			return t
		},
	)
	if err != nil {
		return nil, fmt.Errorf("registrar traducción mmyyyy: %w", err)
	}

	return &RequestValidator{validate: validate, translator: translator}, nil
}

// Check valida la estructura y devuelve las violaciones encontradas (nil si pasa).
func (v *RequestValidator) Check(in any) []dto.FieldViolation {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []dto.FieldViolation{{Field: "", Message: err.Error()}}
	}
	violations := make([]dto.FieldViolation, 0, len(ve))
	for _, fe := range ve {
		violations = append(violations, dto.FieldViolation{
			Field:   fe.Field(),
			Message: fe.Translate(v.translator),
		})
	}
	return violations
}
