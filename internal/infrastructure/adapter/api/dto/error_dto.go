package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse lists every rule a request broke
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}
