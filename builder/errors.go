package builder

import "errors"

// Sentinel errors for builder operations. Capacity rejection is not an
// error; it is reported through the boolean result of Add and AddAll.
var (
	// ErrNilSection is returned when Add is given a nil section.
	ErrNilSection = errors.New("section is nil")

	// ErrNilSections is returned when AddAll is given a nil slice.
	ErrNilSections = errors.New("sections slice is nil")

	// ErrShrinkBelowCommitted is returned when SetMaxLength would drop
	// the limit below the length already committed to the prompt.
	ErrShrinkBelowCommitted = errors.New("max length below committed length")
)
