// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"fmt"

	"github.com/ik5/audsplit/audio"
)

// ErrInjected is returned by MockContainer when FailSeekAt matches.
var ErrInjected = errors.New("injected failure")

// MockContainer is an audio.Container over a byte slice of frames.
type MockContainer struct {
	format audio.Format
	data   []byte
	cursor int

	// Truncate drops that many frames from the end of the data while Frames
	// still reports the untruncated count, like a file cut short on disk.
	Truncate int
	// FailSeekAt makes Seek fail when asked for that frame. Negative disables it.
	FailSeekAt int

	Seeks  []int
	Reads  []int
	Closed bool
}

// NewMockContainer creates a container holding data, which must be a whole
// number of frames of format.
func NewMockContainer(format audio.Format, data []byte) *MockContainer {
	return &MockContainer{
		format:     format,
		data:       data,
		FailSeekAt: -1,
	}
}

func (m *MockContainer) Format() audio.Format { return m.format }
func (m *MockContainer) Frames() int          { return len(m.data) / m.format.BlockAlign() }

func (m *MockContainer) Close() error {
	m.Closed = true
	return nil
}

func (m *MockContainer) Seek(frame int) error {
	m.Seeks = append(m.Seeks, frame)

	if frame == m.FailSeekAt {
		return fmt.Errorf("%w: frame %d", ErrInjected, frame)
	}
	if frame < 0 || frame > m.Frames() {
		return fmt.Errorf("%w: frame %d of %d", audio.ErrSeek, frame, m.Frames())
	}

	m.cursor = frame
	return nil
}

func (m *MockContainer) ReadFrames(n int) ([]byte, error) {
	m.Reads = append(m.Reads, n)

	available := max(m.Frames()-m.Truncate-m.cursor, 0)
	got := min(n, available)

	blockAlign := m.format.BlockAlign()
	start := m.cursor * blockAlign
	out := append([]byte(nil), m.data[start:start+got*blockAlign]...)
	m.cursor += got

	if got < n {
		return out, fmt.Errorf("%w: got %d of %d frames", audio.ErrShortRead, got, n)
	}
	return out, nil
}
