// Package options provides shared utilities for option validation across packages.
package options

import "errors"

// ValidateSingleInputSource ensures exactly one input source is set.
// sources is a variadic list of booleans indicating whether each source is
// set; noSourceMsg and multiSourceMsg are the error messages for the zero and
// many cases.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}
	switch {
	case count == 0:
		return errors.New(noSourceMsg)
	case count > 1:
		return errors.New(multiSourceMsg)
	}
	return nil
}
