// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrUnknownShape indicates that Build was asked for a shape it does not know.
	ErrUnknownShape = errors.New("dataset: unknown shape")

	// ErrNegativeLength indicates a negative length request.
	ErrNegativeLength = errors.New("dataset: length must be non-negative")
)
