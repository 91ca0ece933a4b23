// SPDX-License-Identifier: EPL-2.0

package split

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audsplit/audio"
	"github.com/ik5/audsplit/formats/wav"
)

// Writer writes planned slices of a source container into WAV files.
type Writer struct {
	// Observer receives progress notifications. Nil means none.
	Observer Observer
}

// Split plans slices over every frame of src and writes them into dir.
// It returns the number of files written.
func Split(src audio.Container, slices int, dir, stem string, obs Observer) (int, error) {
	plan, err := Plan(src.Frames(), slices)
	if err != nil {
		return 0, err
	}

	w := &Writer{Observer: obs}
	w.observer().PlanComputed(src.Frames(), plan)

	return w.WriteSlices(plan, src, dir, stem)
}

// WriteSlices writes each plan entry, in order, to dir/stem_NNN.wav with the
// format of src. Only one slice of audio is held in memory at a time.
//
// The first failure stops the run and is returned as a *SliceError; files
// written for earlier entries are kept.
func (w *Writer) WriteSlices(plan []Entry, src audio.Container, dir, stem string) (int, error) {
	obs := w.observer()
	format := src.Format()

	written := 0
	for _, entry := range plan {
		path := filepath.Join(dir, SliceName(stem, entry.Index))
		obs.SliceStarted(entry, path)

		if err := writeSlice(src, format, entry, path); err != nil {
			return written, &SliceError{Index: entry.Index, Path: path, Err: err}
		}

		written++
		obs.SliceWritten(entry, path)
	}

	return written, nil
}

func (w *Writer) observer() Observer {
	if w.Observer == nil {
		return NopObserver{}
	}
	return w.Observer
}

func writeSlice(src audio.Container, format audio.Format, entry Entry, path string) (err error) {
	if err := src.Seek(entry.Offset); err != nil {
		return err
	}

	data, err := src.ReadFrames(entry.Count)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w", cerr)
		}
	}()

	out, err := wav.Create(f, format)
	if err != nil {
		return err
	}
	if err := out.WriteFrames(data); err != nil {
		return err
	}

	return out.Close()
}
