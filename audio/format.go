// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Format describes the layout of PCM frames. It is read once from a source
// container and replicated into every output.
type Format struct {
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels int
	// SampleWidth is the number of bytes used by a single sample of a single channel.
	SampleWidth int
	// FrameRate in Hz.
	FrameRate int
}

// BlockAlign is the size of one frame in bytes.
func (f Format) BlockAlign() int { return f.Channels * f.SampleWidth }

// ByteRate is the number of bytes per second of audio.
func (f Format) ByteRate() int { return f.BlockAlign() * f.FrameRate }

// BitDepth is the sample width expressed in bits.
func (f Format) BitDepth() int { return f.SampleWidth * 8 }

// Validate reports ErrInvalidFormat when f cannot describe PCM data.
func (f Format) Validate() error {
	switch {
	case f.Channels < 1:
		return fmt.Errorf("%w: %d channels", ErrInvalidFormat, f.Channels)
	case f.SampleWidth < 1 || f.SampleWidth > 4:
		return fmt.Errorf("%w: sample width %d bytes", ErrInvalidFormat, f.SampleWidth)
	case f.FrameRate < 1:
		return fmt.Errorf("%w: frame rate %d Hz", ErrInvalidFormat, f.FrameRate)
	}

	return nil
}

func (f Format) String() string {
	return fmt.Sprintf("%d ch, %d-bit, %d Hz", f.Channels, f.BitDepth(), f.FrameRate)
}
