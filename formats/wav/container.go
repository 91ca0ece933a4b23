// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/audsplit/audio"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// Container gives frame addressed access to the data chunk of a WAV stream.
type Container struct {
	rs        io.ReadSeeker
	format    audio.Format
	frames    int
	dataStart int64
	cursor    int
}

func (c *Container) Format() audio.Format { return c.format }
func (c *Container) Frames() int          { return c.frames }

// Close closes the underlying stream when it is an io.Closer.
func (c *Container) Close() error {
	if cl, ok := c.rs.(io.Closer); ok {
		if err := cl.Close(); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

func (c *Container) Seek(frame int) error {
	if frame < 0 || frame > c.frames {
		return fmt.Errorf("%w: frame %d of %d", audio.ErrSeek, frame, c.frames)
	}

	pos := c.dataStart + int64(frame)*int64(c.format.BlockAlign())
	if _, err := c.rs.Seek(pos, io.SeekStart); err != nil {
		return fmt.Errorf("%w: frame %d: %w", audio.ErrSeek, frame, err)
	}
	c.cursor = frame

	return nil
}

func (c *Container) ReadFrames(n int) ([]byte, error) {
	if n <= 0 {
		return []byte{}, nil
	}

	// Never read past the data chunk into trailing chunks
	want := min(n, c.frames-c.cursor)
	blockAlign := c.format.BlockAlign()

	buf := make([]byte, want*blockAlign)
	read, err := io.ReadFull(c.rs, buf)
	got := read / blockAlign
	c.cursor += got

	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("%w", err)
	}
	if got < n {
		return buf[:got*blockAlign], fmt.Errorf("%w: got %d of %d frames", audio.ErrShortRead, got, n)
	}

	return buf, nil
}

// Opener opens WAV streams for an audio.Registry.
type Opener struct{}

func (Opener) Open(rs io.ReadSeeker) (audio.Container, error) {
	c, err := Open(rs)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Open parses the RIFF headers of rs and positions it on the first frame.
func Open(rs io.ReadSeeker) (*Container, error) {
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: audio format %d is not PCM", ErrUnsupportedWavLayout, dec.WavAudioFormat)
	}

	format := audio.Format{
		Channels:    int(dec.NumChans),
		SampleWidth: (int(dec.BitDepth) + 7) / 8,
		FrameRate:   int(dec.SampleRate),
	}
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	// The decoder reads chunk headers straight from rs, so the stream now
	// sits on the first byte of the data chunk.
	dataStart, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dataSize, err := declaredDataSize(rs, dataStart)
	if err != nil {
		return nil, err
	}

	return &Container{
		rs:        rs,
		format:    format,
		frames:    min(dataSize, dec.PCMSize) / format.BlockAlign(),
		dataStart: dataStart,
	}, nil
}

// declaredDataSize returns the data chunk length as stored in the file.
// The riff parser rounds odd chunk sizes up to the word boundary, which
// would count the pad byte as audio.
func declaredDataSize(rs io.ReadSeeker, dataStart int64) (int, error) {
	if _, err := rs.Seek(dataStart-4, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	var size [4]byte
	if _, err := io.ReadFull(rs, size[:]); err != nil {
		return 0, fmt.Errorf("%w: data chunk size: %w", ErrUnsupportedWavChunks, err)
	}

	return int(binary.LittleEndian.Uint32(size[:])), nil
}
