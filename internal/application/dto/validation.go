package dto

// FieldViolation un campo del body que no pasó la validación.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo de las respuestas 400 por body inválido.
type ValidationErrorResponse struct {
	Code       string           `json:"code"`
	Message    string           `json:"message"`
	Violations []FieldViolation `json:"violations"`
}
