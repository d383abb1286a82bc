// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
// Code is a stable machine-readable kind (not_found, conflict, invalid_argument,
// unavailable, internal); Detail is the human-readable message.
type APIError struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

func New(code, msg string) *APIError {
	return &APIError{Code: code, Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Code   string            `json:"code"`
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Code: "invalid_argument", Detail: "Erro de validação", Fields: fields}
}
