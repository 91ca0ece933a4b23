// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audsplit/audio"
)

// HeaderSize is the size of the canonical PCM WAV header written by this package.
const HeaderSize = 44

// Writer streams PCM frames into a WAV file. The RIFF and data chunk
// lengths are only known once all frames are written, so they are patched
// into the header by Close.
type Writer struct {
	w       io.WriteSeeker
	format  audio.Format
	written int64
	closed  bool
}

// Create writes a provisional header for format to w and returns a Writer
// ready for WriteFrames. w must be positioned at the start of the file.
func Create(w io.WriteSeeker, format audio.Format) (*Writer, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	if _, err := w.Write(encodeHeader(format, 0)); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &Writer{w: w, format: format}, nil
}

func (w *Writer) Format() audio.Format { return w.format }

// Frames returns the number of frames written so far.
func (w *Writer) Frames() int {
	return int(w.written / int64(w.format.BlockAlign()))
}

// WriteFrames appends raw little endian interleaved frames.
func (w *Writer) WriteFrames(data []byte) error {
	if w.closed {
		return ErrWriterClosed
	}
	if len(data)%w.format.BlockAlign() != 0 {
		return fmt.Errorf("%w: %d bytes with block align %d", ErrPartialFrame, len(data), w.format.BlockAlign())
	}
	if w.written+int64(len(data)) > math.MaxUint32-(HeaderSize-8)-1 {
		return ErrDataTooLarge
	}

	n, err := w.w.Write(data)
	w.written += int64(n)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Close pads the data chunk to an even length and rewrites the header with
// the final lengths. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true

	// RIFF chunks are word aligned
	if w.written%2 == 1 {
		if _, err := w.w.Write([]byte{0}); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if _, err := w.w.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}
	if _, err := w.w.Write(encodeHeader(w.format, uint32(w.written))); err != nil {
		return fmt.Errorf("%w", err)
	}
	if _, err := w.w.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteWAV writes a complete WAV file holding data to w in one pass.
// It is meant for writers that cannot seek, such as network streams.
func WriteWAV(w io.Writer, format audio.Format, data []byte) error {
	if err := format.Validate(); err != nil {
		return err
	}
	if len(data)%format.BlockAlign() != 0 {
		return fmt.Errorf("%w: %d bytes with block align %d", ErrPartialFrame, len(data), format.BlockAlign())
	}
	if int64(len(data)) > math.MaxUint32-(HeaderSize-8)-1 {
		return ErrDataTooLarge
	}

	if _, err := w.Write(encodeHeader(format, uint32(len(data)))); err != nil {
		return fmt.Errorf("%w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w", err)
	}
	if len(data)%2 == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

func encodeHeader(format audio.Format, dataSize uint32) []byte {
	riffSize := 36 + dataSize + dataSize%2

	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(format.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(format.FrameRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(format.ByteRate()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(format.BlockAlign()))
	binary.LittleEndian.PutUint16(header[34:36], uint16(format.BitDepth()))

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	return header
}
