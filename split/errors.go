// SPDX-License-Identifier: EPL-2.0

package split

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSliceCount indicates a slice count below one.
	ErrInvalidSliceCount = errors.New("slice count must be positive")

	// ErrNegativeFrames indicates a negative total frame count.
	ErrNegativeFrames = errors.New("frame count must not be negative")
)

// SliceError reports the slice that aborted a run. Slices before it are
// complete files and are left on disk.
type SliceError struct {
	// Index is the 0-based plan index; file names use Index+1.
	Index int
	Path  string
	Err   error
}

func (e *SliceError) Error() string {
	return fmt.Sprintf("slice %d (%s): %v", e.Index+1, e.Path, e.Err)
}

func (e *SliceError) Unwrap() error { return e.Err }
