package dto

// DateTimeLayout formato de fechas en las respuestas.
const DateTimeLayout = "2006-01-02 15:04:05"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
