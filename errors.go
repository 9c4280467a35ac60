package bmask

import "errors"

// ErrAlloc is returned by allocating operations (Create, Scale, connected
// component extraction) when the requested size cannot be satisfied. Go has
// no recoverable malloc-failure signal, so this sentinel instead guards the
// one failure mode that is actually reachable: size arithmetic overflowing
// int before a make() call that would otherwise panic or silently
// misbehave.
var ErrAlloc = errors.New("bmask: allocation failed")

// ValidationError reports a caller precondition violated outside the
// "undefined behaviour" contract the core bit-plane ops rely on for speed.
// It is panicked, never returned, a panic-on-misuse convention for cheap,
// always-a-bug checks.
type ValidationError struct {
	Field   string
	Value   any
	Message string
	Context string
}

func (e *ValidationError) Error() string {
	msg := e.Field + ": " + e.Message
	if e.Context != "" {
		msg = e.Context + ": " + msg
	}
	return msg
}

// WithContext sets the reporting context (typically "Type.Method") and
// returns the receiver for chaining into a panic call.
func (e *ValidationError) WithContext(ctx string) *ValidationError {
	e.Context = ctx
	return e
}
