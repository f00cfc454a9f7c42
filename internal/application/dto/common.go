package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Field campo del formulario que causó el error de validación, para que
	// la UI lo muestre junto al campo ofensor. Vacío si no aplica.
	Field string `json:"field,omitempty"`
}
