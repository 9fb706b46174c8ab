package enumerator

import "errors"

// Sentinel errors for enumerator operations.
var (
	// ErrNegativeWidth indicates a constructor received a negative width.
	ErrNegativeWidth = errors.New("enumerator: width must be non-negative")
	// ErrWidthTooLarge indicates a width beyond MaxWidth for its kind.
	ErrWidthTooLarge = errors.New("enumerator: width too large")
	// ErrUnknownKind indicates an unrecognised variant.
	ErrUnknownKind = errors.New("enumerator: unknown kind")
	// ErrIndexOutOfRange indicates an index outside [0, MaxCount).
	ErrIndexOutOfRange = errors.New("enumerator: index out of range")
	// ErrOutOfShape indicates a point outside the enumerated region.
	ErrOutOfShape = errors.New("enumerator: point outside shape")
	// ErrInvalidQuadrant indicates a ring edge could not be classified.
	ErrInvalidQuadrant = errors.New("enumerator: invalid quadrant")
)
