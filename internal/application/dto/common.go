package dto

// ErrorResponse cuerpo de error HTTP: {"error": "<motivo>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OKResponse respuesta de confirmación simple: {"ok": true}.
type OKResponse struct {
	OK bool `json:"ok"`
}

// PageResponse metadatos de página en respuestas de listado.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}
