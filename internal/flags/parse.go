package flags

import (
	"errors"
	"fmt"
)

// ErrInvalidBool is returned by ParseBool for anything outside the
// accepted literals.
var ErrInvalidBool = errors.New("invalid boolean")

// ParseBool accepts True/False in any of the usual casings, or 1/0.
func ParseBool(s string) (bool, error) {
	switch s {
	case "True", "true", "TRUE", "1":
		return true, nil
	case "False", "false", "FALSE", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q (want True, False, 1 or 0)", ErrInvalidBool, s)
}
