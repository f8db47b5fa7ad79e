package stakepool

import (
	"errors"
	"fmt"
)

// Decode failure classes. Callers match with errors.Is; the wrapped
// messages carry offset diagnostics.
var (
	// ErrTruncatedInput means the account data ended before the layout did.
	ErrTruncatedInput = errors.New("ErrTruncatedInput")

	// ErrMalformedLayout means the account data is internally inconsistent,
	// e.g. it carries the wrong account-type discriminant.
	ErrMalformedLayout = errors.New("ErrMalformedLayout")
)

func errTruncated(offset uint, need int, have int) error {
	return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncatedInput, need, offset, have)
}
