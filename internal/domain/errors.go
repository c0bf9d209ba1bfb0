package domain

import "errors"

// Error message string constants - single source of truth for error messages
const (
	ErrMsgItemNotFound   = "item not found"
	ErrMsgUnitMismatch   = "no conversion between units"
	ErrMsgInvalidRecord  = "invalid record"
	ErrMsgRecipeNotFound = "recipe not found"
	ErrMsgEmptyCatalog   = "catalog is empty"
	ErrMsgEmptyBook      = "recipe book is empty"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	// Resolution errors, captured per line inside a cost report
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrUnitMismatch = errors.New(ErrMsgUnitMismatch)

	// Load-time errors, reported per row and the row skipped
	ErrInvalidRecord = errors.New(ErrMsgInvalidRecord)

	// Lookup errors
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)

	// Fatal load errors: the whole source is unusable
	ErrEmptyCatalog = errors.New(ErrMsgEmptyCatalog)
	ErrEmptyBook    = errors.New(ErrMsgEmptyBook)
)
