package models

import (
	"errors"
	"fmt"
)

// ErrorResponse is the body returned for a missing resource
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the body returned when a creation request is rejected
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// Messages exposed to API clients
const (
	MsgRestaurantNotFound      = "Restaurant not found"
	MsgRestaurantPizzaNotFound = "RestaurantPizza not found"
	MsgMissingData             = "Missing data for restaurant_pizza creation"
	MsgReferenceNotFound       = "Pizza or Restaurant not found"
	MsgValidationErrors        = "validation errors"
)

var (
	ErrRestaurantNotFound      = errors.New("restaurant not found")
	ErrPizzaNotFound           = errors.New("pizza not found")
	ErrRestaurantPizzaNotFound = errors.New("restaurant pizza not found")
)

// ValidationError reports a field value that breaks an entity invariant
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewErrorResponse creates a single error body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewErrorsResponse creates an error list body
func NewErrorsResponse(messages ...string) ErrorsResponse {
	return ErrorsResponse{Errors: messages}
}
