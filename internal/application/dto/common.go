package dto

// PageRequest paginación para listados (query string).
type PageRequest struct {
	Page int    `query:"page" validate:"min=0"`
	Size int    `query:"size" validate:"min=0,max=100"`
	Sort string `query:"sort"` // "campo" o "campo,desc"
}

// Defaults aplica los valores por defecto del listado de clientes:
// página 0, tamaño 10, orden por nombre ascendente.
func (p *PageRequest) Defaults() {
	if p.Size <= 0 {
		p.Size = 10
	}
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Sort == "" {
		p.Sort = "name"
	}
}

// Offset devuelve el desplazamiento en filas para la página solicitada.
func (p *PageRequest) Offset() int {
	return p.Page * p.Size
}

// PagedResponse página de resultados con el total de registros.
type PagedResponse[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
