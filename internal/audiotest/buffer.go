// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"fmt"
	"io"
)

// Buffer is an in-memory io.ReadWriteSeeker, usable wherever a file is
// expected by the encoders and containers.
type Buffer struct {
	data   []byte
	offset int64
}

// NewBuffer returns a Buffer holding a copy of data, positioned at the start.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: append([]byte(nil), data...)}
}

// Bytes returns the full contents regardless of the current offset.
func (b *Buffer) Bytes() []byte { return b.data }

func (b *Buffer) Read(p []byte) (int, error) {
	if b.offset >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.offset:])
	b.offset += int64(n)
	return n, nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	end := b.offset + int64(len(p))
	if end > int64(len(b.data)) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.offset:], p)
	b.offset = end
	return len(p), nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = b.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	b.offset = newOffset
	return newOffset, nil
}
