// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audsplit/audio"
	"github.com/ik5/audsplit/utils"
)

// skipChunk bounds the buffer used when a forward seek has to read through frames.
const skipChunk = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Container wraps go-audio aiff.Decoder to implement audio.Container.
//
// The decoder only reads forward, so the frame cursor is sequential: a seek
// ahead reads and discards frames, a seek back restarts the decoder from the
// beginning of the stream.
type Container struct {
	dec    aiffReader
	reopen func() (aiffReader, error)
	closer io.Closer

	format audio.Format
	frames int
	cursor int
	intBuf *goaudio.IntBuffer
}

func (c *Container) Format() audio.Format { return c.format }
func (c *Container) Frames() int          { return c.frames }

func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}

	if err := c.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (c *Container) Seek(frame int) error {
	if frame < 0 || frame > c.frames {
		return fmt.Errorf("%w: frame %d of %d", audio.ErrSeek, frame, c.frames)
	}

	if frame < c.cursor {
		if c.reopen == nil {
			return fmt.Errorf("%w: cannot rewind to frame %d", audio.ErrSeek, frame)
		}
		dec, err := c.reopen()
		if err != nil {
			return fmt.Errorf("%w: rewind: %w", audio.ErrSeek, err)
		}
		c.dec = dec
		c.intBuf = nil
		c.cursor = 0
	}

	for c.cursor < frame {
		if _, err := c.ReadFrames(min(frame-c.cursor, skipChunk)); err != nil {
			return fmt.Errorf("%w: frame %d: %w", audio.ErrSeek, frame, err)
		}
	}

	return nil
}

// ReadFrames converts the big endian AIFF samples to the WAV byte layout.
func (c *Container) ReadFrames(n int) ([]byte, error) {
	if n <= 0 {
		return []byte{}, nil
	}

	channels := c.format.Channels
	width := c.format.SampleWidth
	wantSamples := min(n, c.frames-c.cursor) * channels
	out := make([]byte, wantSamples*width)

	got := 0
	for got < wantSamples {
		buf := c.buffer(wantSamples - got)

		k, err := c.dec.PCMBuffer(buf)
		for i := range k {
			utils.PutWAVSample(out[(got+i)*width:], buf.Data[i], width)
		}
		got += k

		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w", err)
		}
		if k == 0 || err != nil {
			break
		}
	}

	frames := got / channels
	c.cursor += frames
	out = out[:frames*c.format.BlockAlign()]

	if frames < n {
		return out, fmt.Errorf("%w: got %d of %d frames", audio.ErrShortRead, frames, n)
	}
	return out, nil
}

func (c *Container) buffer(samples int) *goaudio.IntBuffer {
	if c.intBuf == nil || cap(c.intBuf.Data) < samples {
		c.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, samples),
			Format: c.dec.Format(),
		}
	}
	c.intBuf.Data = c.intBuf.Data[:samples]

	return c.intBuf
}

// Opener opens AIFF streams for an audio.Registry.
type Opener struct{}

func (Opener) Open(rs io.ReadSeeker) (audio.Container, error) {
	c, err := Open(rs)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Open reads the AIFF headers from rs. The stream must stay open for the
// lifetime of the Container; Close closes it when it is an io.Closer.
func Open(rs io.ReadSeeker) (*Container, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dec, format, frames, err := decode(rs)
	if err != nil {
		return nil, err
	}

	c := &Container{
		dec:    dec,
		format: format,
		frames: frames,
		reopen: func() (aiffReader, error) {
			if _, err := rs.Seek(start, io.SeekStart); err != nil {
				return nil, fmt.Errorf("%w", err)
			}
			dec, _, _, err := decode(rs)
			if err != nil {
				return nil, err
			}
			return dec, nil
		},
	}
	if cl, ok := rs.(io.Closer); ok {
		c.closer = cl
	}

	return c, nil
}

func decode(rs io.ReadSeeker) (*aiff.Decoder, audio.Format, int, error) {
	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, audio.Format{}, 0, ErrNotAiffFile
	}

	// Read file info
	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, audio.Format{}, 0, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	goFormat := dec.Format()
	if goFormat == nil {
		return nil, audio.Format{}, 0, ErrUnsupportedAiffLayout
	}

	format := audio.Format{
		Channels:    goFormat.NumChannels,
		SampleWidth: int(dec.BitDepth) / 8,
		FrameRate:   goFormat.SampleRate,
	}
	if err := format.Validate(); err != nil {
		return nil, audio.Format{}, 0, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
	}

	return dec, format, int(dec.NumSampleFrames), nil
}
