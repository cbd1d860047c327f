package pricing

import "fmt"

// PricingError signals an upstream contract violation: invalid input that
// validation should have rejected before it reached an engine.
type PricingError struct {
	Code    string
	Message string
}

func (e *PricingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewContractError(msg string) error {
	return &PricingError{
		Code:    "contractViolation",
		Message: msg,
	}
}
