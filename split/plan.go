// SPDX-License-Identifier: EPL-2.0

package split

import "fmt"

// Entry is one slice of the source: Count frames starting at Offset.
type Entry struct {
	Index  int
	Offset int
	Count  int
}

// Plan divides totalFrames into slices contiguous entries.
//
// Every entry gets totalFrames/slices frames, and the last
// totalFrames%slices entries get one extra frame, so short slices come first.
// When slices exceeds totalFrames the leading entries are empty.
func Plan(totalFrames, slices int) ([]Entry, error) {
	if slices < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSliceCount, slices)
	}
	if totalFrames < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeFrames, totalFrames)
	}

	base := totalFrames / slices
	remainder := totalFrames % slices
	short := slices - remainder

	plan := make([]Entry, slices)
	offset := 0
	for i := range plan {
		count := base
		if i >= short {
			count++
		}

		plan[i] = Entry{Index: i, Offset: offset, Count: count}
		offset += count
	}

	return plan, nil
}
