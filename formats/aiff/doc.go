// SPDX-License-Identifier: EPL-2.0

// Package aiff provides frame access to AIFF (Audio Interchange File Format) files.
//
// This package wraps github.com/go-audio/aiff and exposes AIFF files as an
// audio.Container, so they can be sliced into WAV files like any WAV source.
//
// # Supported Formats
//
//   - PCM 8, 16, 24 and 32-bit
//   - Any channel count and sample rate
//
// # Byte Order
//
// AIFF stores big endian signed samples, WAV little endian ones (unsigned
// for 8-bit). ReadFrames converts every sample so the returned bytes can go
// straight into a WAV data chunk:
//
//	file, _ := os.Open("audio.aiff")
//	c, err := aiff.Open(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer c.Close()
//
//	data, err := c.ReadFrames(c.Frames())
//
// # Seeking
//
// The underlying decoder streams forward only. Seeking ahead reads through
// the skipped frames; seeking back re-reads the headers from the position
// the stream had when Open was called. Slicing a file front to back never
// seeks backwards.
//
// # Limitations
//
// AIFF files with zero sample frames are reported as ErrNotAiffFile by the
// go-audio validity check.
package aiff
