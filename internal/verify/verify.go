// Package verify reduces an actual attribute reading and an expected literal
// to a pass/fail outcome. Tokens are compared for exact equality; callers
// must supply expected values in the same representation the capability
// layer returns ("in", "out", "rising", "falling", "both", "none", "0", "1").
package verify

import (
	gpioerrors "github.com/gbfwtest/gpiocert/pkg/errors"
)

// Compare checks an attribute reading against the expected literal. It
// returns nil on a match and a VerificationError on a mismatch. No
// normalization is applied beyond what the capability layer already did.
func Compare(attribute string, line int, actual, expected string) error {
	if actual == expected {
		return nil
	}
	return gpioerrors.NewVerificationError(attribute, line, actual, expected)
}
