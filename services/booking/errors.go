package booking

import (
	"fmt"
	"strings"
)

// InvalidConfigError carries the enumerated configuration problems of a
// booking request. Callers must not create a booking against one.
type InvalidConfigError struct {
	Problems []string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid booking configuration: %s", strings.Join(e.Problems, "; "))
}

func NewInvalidConfigError(problems []string) error {
	return &InvalidConfigError{Problems: problems}
}
