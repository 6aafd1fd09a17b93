package advanced

import "github.com/pkg/errors"

// Deep inside the derivations, the only failures are programmer errors (for
// example, a triangle whose handle does not fit the matrix it is written to).
// Threading errors through every loop for those would add a ton of noise.
// Instead, we panic with a DerivationError, and the public API recovers to
// convert it into an error.
//
// DerivationError is a distinct type so that runtime errors, which are errors
// too, still crash instead of being mistaken for one of ours.
type DerivationError struct {
	error
}

func (e DerivationError) Unwrap() error {
	return e.error
}

// Panic with a DerivationError.
func fatalf(format string, args ...interface{}) {
	panic(DerivationError{errors.Errorf(format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if derivationError, ok := r.(DerivationError); ok {
			return derivationError
		}
		panic(r)
	}
	return nil
}
