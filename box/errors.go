// SPDX-License-Identifier: MIT

package box

import "errors"

var (
	// ErrNonPositiveLength is returned by constructors when any edge
	// length is zero, negative, NaN or infinite.
	ErrNonPositiveLength = errors.New("box: edge lengths must be positive and finite")

	// ErrBadTilt is returned by constructors when a tilt factor is NaN
	// or infinite.
	ErrBadTilt = errors.New("box: tilt factors must be finite")
)
