package advanced

import "github.com/pkg/errors"

// A malformed endpoint sequence or a call that violates a precondition (like
// normalizing a zero vector) cannot be recovered from locally, and threading
// errors through every geometric helper would bury the math. Instead, we
// panic, and the public API recovers to convert to an error.

// ArcError wraps the errors raised by fatalf. Only panics carrying an ArcError
// are converted back into errors; runtime errors and other panics propagate.
type ArcError struct {
	error
}

func (e ArcError) Unwrap() error {
	return e.error
}

// Panic with an ArcError.
func fatalf(format string, args ...interface{}) {
	panic(ArcError{errors.Errorf(format, args...)})
}

func must(cond bool, format string, args ...interface{}) {
	if !cond {
		fatalf("assertion failed: "+format, args...)
	}
}

func HandleArcPanicRecover(r interface{}) error {
	if r != nil {
		if arcError, ok := r.(ArcError); ok {
			return arcError
		}
		panic(r)
	}
	return nil
}
