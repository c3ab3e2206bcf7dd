package validators

import "errors"

var (
	// ErrInvalidInput wraps every rule violation found in a value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType is returned for values that are not structs.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)
