// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds helpers shared by the package tests: fixture
// generators, an in-memory file and a mock container.
package audiotest

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/audsplit/audio"
	"github.com/ik5/audsplit/utils"
)

// Samples generates a deterministic interleaved sample pattern that fits
// every sample width and differs between neighbouring frames and channels.
func Samples(frames, channels int) []int {
	out := make([]int, frames*channels)
	for f := range frames {
		for ch := range channels {
			out[f*channels+ch] = (f*13+ch*101)%251 - 125
		}
	}
	return out
}

// PCM packs samples into little endian WAV frame bytes.
func PCM(samples []int, width int) []byte {
	out := make([]byte, len(samples)*width)
	for i, v := range samples {
		utils.PutWAVSample(out[i*width:], v, width)
	}
	return out
}

// WriteWAV encodes samples into w using the go-audio WAV encoder.
// Only 16, 24 and 32-bit formats are supported.
func WriteWAV(w io.WriteSeeker, format audio.Format, samples []int) error {
	if format.SampleWidth < 2 {
		return fmt.Errorf("audiotest: WriteWAV needs at least 16-bit samples")
	}

	enc := wav.NewEncoder(w, format.FrameRate, format.BitDepth(), format.Channels, 1)
	if err := enc.Write(intBuffer(format, samples)); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// WriteAIFF encodes samples into w using the go-audio AIFF encoder.
func WriteAIFF(w io.WriteSeeker, format audio.Format, samples []int) error {
	enc := aiff.NewEncoder(w, format.FrameRate, format.BitDepth(), format.Channels)
	if err := enc.Write(intBuffer(format, samples)); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// DecodeWAV reads a WAV file back with the go-audio decoder, independently
// of formats/wav, and returns its format and samples.
func DecodeWAV(rs io.ReadSeeker) (audio.Format, []int, error) {
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return audio.Format{}, nil, fmt.Errorf("audiotest: not a valid WAV file")
	}

	format := audio.Format{
		Channels:    int(dec.NumChans),
		SampleWidth: int(dec.BitDepth) / 8,
		FrameRate:   int(dec.SampleRate),
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return format, nil, fmt.Errorf("%w", err)
	}
	return format, buf.Data, nil
}

func intBuffer(format audio.Format, samples []int) *goaudio.IntBuffer {
	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: format.Channels,
			SampleRate:  format.FrameRate,
		},
		Data:           samples,
		SourceBitDepth: format.BitDepth(),
	}
}
