package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")

	// ErrPartialFrame indicates a write that does not end on a frame boundary.
	ErrPartialFrame = errors.New("data is not a whole number of frames")
	// ErrWriterClosed indicates a write or close on a finalized Writer.
	ErrWriterClosed = errors.New("WAV writer is closed")
	// ErrDataTooLarge indicates the data chunk would overflow the 32-bit RIFF size field.
	ErrDataTooLarge = errors.New("WAV data exceeds 4 GiB")
)
