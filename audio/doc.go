// SPDX-License-Identifier: EPL-2.0

// Package audio provides the container model shared by the format backends.
//
// This package contains:
//   - Format, the channels / sample width / frame rate triple
//   - Container interface for frame addressed access to PCM data
//   - Opener and Registry for resolving a backend by file extension
//   - The error taxonomy used across the module
//
// # Container Interface
//
//	type Container interface {
//	    Format() Format
//	    Frames() int
//	    Seek(frame int) error
//	    ReadFrames(n int) ([]byte, error)
//	    Close() error
//	}
//
// ReadFrames always returns little endian interleaved samples, so the bytes
// can be written into a WAV data chunk as they are, whatever the source
// container was.
//
// # Registry
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Opener{})
//	reg.Register("aif", aiff.Opener{})
//
//	opener, err := reg.Lookup("drums.AIF")
//	if errors.Is(err, audio.ErrUnsupportedFormat) {
//	    // neither WAV nor AIFF
//	}
//
// # Errors
//
// ErrSeek and ErrShortRead are returned wrapped by containers; match them
// with errors.Is.
package audio
