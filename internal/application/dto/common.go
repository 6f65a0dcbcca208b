package dto

import "github.com/jarad-ux/eccocontrol-center/pkg/validation"

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse HTTP 400 body enumerating every failing field.
type ValidationErrorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields"`
}

// NewValidationError builds the 400 body from collected field errors.
func NewValidationError(errs *validation.Errors) ValidationErrorResponse {
	return ValidationErrorResponse{
		Code:    "VALIDATION",
		Message: "validation error",
		Fields:  errs.Fields,
	}
}
