package harness

import (
	"strconv"

	"github.com/pkg/errors"
)

// Naming returns the parameter name for the input at index.
type Naming func(index int) (string, error)

// IndexedNaming names parameters "param_<index>". Names never collide.
func IndexedNaming(index int) (string, error) {
	if index < 0 {
		return "", errors.Errorf("negative input index %d", index)
	}
	return "param_" + strconv.Itoa(index), nil
}

// AlphabetNaming names parameters "A", "B", ... by input position, scalars
// included. It only supports 26 inputs and fails beyond that rather than
// reusing a name.
func AlphabetNaming(index int) (string, error) {
	if index < 0 || index >= 26 {
		return "", errors.Wrapf(ErrTooManyInputs, "input index %d", index)
	}
	return string(rune('A' + index)), nil
}
