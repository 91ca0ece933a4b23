// SPDX-License-Identifier: EPL-2.0

// Package split cuts an audio container into N sequential WAV files.
//
// Plan computes how many frames each slice gets; Writer reads each range
// from the source and writes it to its own WAV file with the source's
// channel count, sample width and frame rate.
//
//	plan, _ := split.Plan(100, 3)
//	// [{0 0 33} {1 33 33} {2 66 34}]
//
//	w := &split.Writer{Observer: split.NewLogObserver(nil)}
//	n, err := w.WriteSlices(plan, src, "out", "take")
//	// out/take_001.wav, out/take_002.wav, out/take_003.wav
//
// Slices are written strictly in order from one source cursor. A failure
// aborts the run with a *SliceError naming the slice; earlier files stay.
package split
