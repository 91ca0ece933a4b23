// SPDX-License-Identifier: EPL-2.0

package audsplit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audsplit/audio"
	"github.com/ik5/audsplit/formats/aiff"
	"github.com/ik5/audsplit/formats/wav"
	"github.com/ik5/audsplit/split"
)

// Options controls SplitFile.
type Options struct {
	// Slices is the number of output files; must be positive.
	Slices int
	// Prefix replaces the source base name in output file names when set.
	Prefix string
	// Destination is an existing directory receiving the slices.
	Destination string
	// Observer receives progress notifications. Nil means none.
	Observer split.Observer
	// Registry resolves the source backend. Nil means DefaultRegistry().
	Registry *audio.Registry
}

// Result lists what SplitFile wrote.
type Result struct {
	Dir   string
	Files []string
}

// DefaultRegistry maps the WAV and AIFF extensions to their backends.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Opener{})
	reg.Register("wave", wav.Opener{})
	reg.Register("aif", aiff.Opener{})
	reg.Register("aiff", aiff.Opener{})
	reg.Register("aifc", aiff.Opener{})

	return reg
}

// SplitFile cuts the WAV or AIFF file at path into opts.Slices WAV files
// named <stem>_NNN.wav inside opts.Destination.
//
// The backend is chosen from the file extension; anything else fails with
// audio.ErrUnsupportedFormat before a file is written. A failure while
// writing returns a *split.SliceError, and Result still lists the slices
// completed before it.
//
// Example:
//
//	res, err := audsplit.SplitFile("session.aiff", audsplit.Options{
//	    Slices:      4,
//	    Destination: "out",
//	})
//	// out/session_001.wav ... out/session_004.wav
func SplitFile(path string, opts Options) (res Result, err error) {
	res.Dir = opts.Destination

	reg := opts.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}

	opener, err := reg.Lookup(path)
	if err != nil {
		return res, err
	}

	f, err := os.Open(path)
	if err != nil {
		return res, fmt.Errorf("%w", err)
	}

	src, err := opener.Open(f)
	if err != nil {
		f.Close()
		return res, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w", cerr)
		}
	}()

	stem := split.Stem(path, opts.Prefix)
	n, err := split.Split(src, opts.Slices, opts.Destination, stem, opts.Observer)

	res.Files = make([]string, n)
	for i := range n {
		res.Files[i] = filepath.Join(opts.Destination, split.SliceName(stem, i))
	}

	return res, err
}
