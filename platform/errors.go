package platform

import "errors"

// Failure kinds for platform calls. Callers branch on the kind, never on the
// transport error underneath.
var (
	ErrNotFound    = errors.New("platform: not found")
	ErrForbidden   = errors.New("platform: forbidden")
	ErrRateLimited = errors.New("platform: rate limited")
	ErrTransient   = errors.New("platform: transient failure")
)

// Error wraps a failed platform call with its kind. Unwrap yields the kind
// sentinel so errors.Is works against the vars above.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Op + ": " + e.Err.Error()
	}

	return e.Op + ": " + e.Kind.Error()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}

// Definitive reports whether err is a final answer about the resource rather
// than a retryable condition. Only definitive failures may prune state.
func Definitive(err error) bool {
	return IsNotFound(err) || IsForbidden(err)
}
