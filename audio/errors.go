// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrUnsupportedFormat indicates the source is neither WAV nor AIFF.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrSeek indicates a frame position outside the container.
	ErrSeek = errors.New("seek outside of audio frames")

	// ErrShortRead indicates the container returned fewer frames than requested.
	ErrShortRead = errors.New("short read of audio frames")

	// ErrInvalidFormat indicates channels, sample width or frame rate are out of range.
	ErrInvalidFormat = errors.New("invalid audio format")
)
