// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
)

// ErrNotPowerOfTwo is returned when the input length is not 0, 1 or a power
// of two.
var ErrNotPowerOfTwo = errors.New("network: length is not a power of two")

// checkLength validates the network precondition.
func checkLength(n int) error {
	if n < 0 || n&(n-1) != 0 {
		return fmt.Errorf("%w: len=%d", ErrNotPowerOfTwo, n)
	}

	return nil
}
