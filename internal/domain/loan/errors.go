package loan

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized    = errors.New("operation not permitted for this role")
	ErrNotFound        = errors.New("loan request not found")
	ErrInvalidAmount   = errors.New("amount must be a positive finite number")
	ErrInvalidProgress = errors.New("repayment progress must be between 0 and 100")
	ErrInvalidInput    = errors.New("invalid loan request input")
)

// CapacityError rejects an investment that would push funding past the
// target. Remaining carries the maximum amount still acceptable so the
// caller can report it.
type CapacityError struct {
	Remaining float64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("investment exceeds remaining capacity (max %.2f)", e.Remaining)
}
