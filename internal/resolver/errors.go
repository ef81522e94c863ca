package resolver

import "errors"

var (
	// ErrUnsupportedPrimitiveKind is returned for primitive kinds outside the
	// type map.
	ErrUnsupportedPrimitiveKind = errors.New("unsupported primitive kind")
	// ErrUnresolvedFieldShape is returned when a value matches none of the
	// shapes known to the binding style.
	ErrUnresolvedFieldShape = errors.New("unresolved field shape")
	// ErrAmbiguousWrapperField is returned when an object has more than one
	// wrapper or array field.
	ErrAmbiguousWrapperField = errors.New("ambiguous wrapper field")
	// ErrRecursionLimitExceeded is returned when nesting exceeds the
	// configured depth.
	ErrRecursionLimitExceeded = errors.New("recursion limit exceeded")
)
