// SPDX-License-Identifier: EPL-2.0

// Package audsplit splits a WAV or AIFF file into N sequential WAV files.
//
// Each slice is a complete, independently playable WAV file with the
// channel count, sample width and frame rate of the source. Sample data is
// copied as is; nothing is resampled or transcoded. Concatenating the
// slices in order gives back the source audio exactly.
//
// # Quick Start
//
//	res, err := audsplit.SplitFile("take.wav", audsplit.Options{
//	    Slices:      3,
//	    Destination: "out",
//	})
//	// out/take_001.wav, out/take_002.wav, out/take_003.wav
//
// # Slice Sizes
//
// Every slice gets frames/N frames and the last frames%N slices get one
// frame more. 100 frames in 3 slices gives 33, 33 and 34 frames. Asking
// for more slices than there are frames yields empty leading slices,
// which are still valid WAV files.
//
// # File Names
//
// Slices are named <stem>_NNN.wav with a 1-based number padded to three
// digits. The stem is Options.Prefix, or the source base name without its
// extension.
//
// # Packages
//
//   - audio: Format, the Container interface and the backend Registry
//   - formats/wav: WAV container and streaming WAV writer
//   - formats/aiff: AIFF container
//   - split: slice planning and writing
//
// # Failures
//
// Errors are never retried. The first failing slice stops the run and is
// reported as a *split.SliceError; slices already written stay on disk.
package audsplit
