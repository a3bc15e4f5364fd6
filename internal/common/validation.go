package common

import (
	"strconv"
	"strings"
)

// ValidationError marks errors caused by bad form input, so handlers
// can answer 400 instead of a server fault.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// ParsePrice converts the raw form value into the stored price. The
// composer sends price as text; anything that parses to a non-negative
// float is accepted, nothing else is validated.
func ParsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, NewValidationError("price is required")
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, NewValidationError("price must be a number")
	}
	if price < 0 {
		return 0, NewValidationError("price cannot be negative")
	}

	return price, nil
}
