// SPDX-License-Identifier: MIT

package novelty

import "errors"

var (
	// ErrNegativeInput indicates a negative sleep duration.
	ErrNegativeInput = errors.New("novelty: negative input")

	// ErrRangeTooLarge indicates a value whose simulated or real sleep would
	// exceed the configured bounds.
	ErrRangeTooLarge = errors.New("novelty: value range too large")

	// ErrInvalidUnit indicates a non-positive time unit for SleepTimed.
	ErrInvalidUnit = errors.New("novelty: time unit must be positive")
)
