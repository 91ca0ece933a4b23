// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
)

// Container is an open audio file positioned on its sample data.
type Container interface {
	// Format of the stored frames.
	Format() Format
	// Frames is the total number of frames in the container.
	Frames() int
	// Seek moves the frame cursor to frame. Seeking to Frames() is allowed
	// and leaves nothing to read.
	Seek(frame int) error
	// ReadFrames reads exactly n frames from the cursor and returns them
	// as little endian interleaved PCM, the layout WAV stores on disk.
	// Returns ErrShortRead when fewer than n frames are available.
	ReadFrames(n int) ([]byte, error)

	// Close releases any resources.
	Close() error
}

// Opener constructs a Container from an input stream.
type Opener interface {
	Open(rs io.ReadSeeker) (Container, error)
}

// Registry for openers by file extension (e.g., "wav", "aif").
type Registry struct {
	openers map[string]Opener

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		openers: make(map[string]Opener),
		mtx:     &sync.Mutex{},
	}
}

// Register binds ext to o. The extension is matched without the leading dot
// and case-insensitively.
func (r *Registry) Register(ext string, o Opener) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.openers[normalizeExt(ext)] = o
}

func (r *Registry) Get(ext string) (Opener, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	o, ok := r.openers[normalizeExt(ext)]
	return o, ok
}

// Lookup resolves the Opener for path by its extension.
func (r *Registry) Lookup(path string) (Opener, error) {
	ext := normalizeExt(filepath.Ext(path))
	if o, ok := r.Get(ext); ok {
		return o, nil
	}

	if ext == "" {
		return nil, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// Extensions lists the registered extensions in no particular order.
func (r *Registry) Extensions() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	exts := make([]string, 0, len(r.openers))
	for ext := range r.openers {
		exts = append(exts, ext)
	}
	return exts
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
