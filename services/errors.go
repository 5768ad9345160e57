package services

import (
	"errors"
	"fmt"
)

// Reconciliation and lifecycle error kinds. Each is a distinct outcome
// surfaced synchronously to the caller; none is retried in the background.
var (
	ErrIneligibleJobworkType    = errors.New("jobwork type is not eligible for this batch")
	ErrQuantityExceedsAvailable = errors.New("assigned quantity exceeds available batch quantity")
	ErrInvalidTransition        = errors.New("invalid jobwork status transition")
	ErrNotReadyToClose          = errors.New("jobwork is not awaiting close")
	ErrQuantityExceeded         = errors.New("total entered quantity exceeds pending quantity")
	ErrShortDelivery            = errors.New("total entered quantity is below pending quantity")
	ErrJobworkAlreadyClosed     = errors.New("jobwork is already closed")
	ErrAlreadyResolved          = errors.New("workflow request is already resolved")
)

// RowError reports a malformed receipt row with enough detail for the
// caller to correct and resubmit.
type RowError struct {
	Row    int    `json:"row"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s (%s)", e.Row, e.Reason, e.Field)
}
