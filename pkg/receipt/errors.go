package receipt

import "fmt"

// ValidationError reports malformed or inconsistent transaction input
// (empty cart, missing product snapshot, broken totals arithmetic).
// The engine never repairs financial data; the error always reaches the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("receipt: invalid %s: %s", e.Field, e.Reason)
}

// FormattingError reports a field value a formatting utility cannot render,
// e.g. a negative monetary amount.
type FormattingError struct {
	Field  string
	Reason string
}

func (e *FormattingError) Error() string {
	return fmt.Sprintf("receipt: cannot format %s: %s", e.Field, e.Reason)
}
