package compare

import "errors"

// ErrInvalidComparator is raised by a container constructor when the
// supplied comparator is missing (nil). Construction failure on a bad
// comparator is a contract violation, not an expected-absence result, so
// it is raised rather than reported via a boolean or nullable return (§7).
var ErrInvalidComparator = errors.New("compare: comparator must not be nil")

// Require validates that fn is usable as a Func, returning
// ErrInvalidComparator if it is nil.
func Require[T any](fn Func[T]) error {
	if fn == nil {
		return ErrInvalidComparator
	}
	return nil
}
