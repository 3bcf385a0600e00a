package inject

import (
	"errors"
	"strconv"
)

// ErrDuplicateCallback is matched by DuplicateCallbackError via errors.Is.
var ErrDuplicateCallback = errors.New("inject: duplicate callback binding")

// DuplicateCallbackError is returned when a second callback is bound to a key
// that already has one.
type DuplicateCallbackError struct {
	Key int

	// Existing is the method name already bound to Key.
	Existing string
}

// Error implements the error interface.
func (e DuplicateCallbackError) Error() string {
	// Example: inject: duplicate callback binding for id 1 (already bound to method 'onClick')
	return "inject: duplicate callback binding for id " + strconv.Itoa(e.Key) +
		" (already bound to method " + strconv.Quote(e.Existing) + ")"
}

// Is reports whether target is ErrDuplicateCallback.
func (e DuplicateCallbackError) Is(target error) bool {
	return target == ErrDuplicateCallback
}
