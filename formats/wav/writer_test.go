// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ik5/audsplit/audio"
	"github.com/ik5/audsplit/internal/audiotest"
)

var stereo16 = audio.Format{Channels: 2, SampleWidth: 2, FrameRate: 44100}

func TestWriter_EmptyFile(t *testing.T) {
	t.Parallel()

	buf := audiotest.NewBuffer(nil)
	w, err := Create(buf, stereo16)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != HeaderSize {
		t.Fatalf("file size = %d, want %d (header only)", len(data), HeaderSize)
	}
	if got := binary.LittleEndian.Uint32(data[4:8]); got != 36 {
		t.Errorf("RIFF size = %d, want 36", got)
	}
	if got := binary.LittleEndian.Uint32(data[40:44]); got != 0 {
		t.Errorf("data size = %d, want 0", got)
	}
}

func TestWriter_CorrectHeader(t *testing.T) {
	t.Parallel()

	format := audio.Format{Channels: 2, SampleWidth: 3, FrameRate: 48000}
	frames := audiotest.PCM(audiotest.Samples(10, 2), 3)

	buf := audiotest.NewBuffer(nil)
	w, err := Create(buf, format)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := w.WriteFrames(frames[:24]); err != nil {
		t.Fatalf("WriteFrames() error = %v", err)
	}
	if err := w.WriteFrames(frames[24:]); err != nil {
		t.Fatalf("WriteFrames() error = %v", err)
	}
	if w.Frames() != 10 {
		t.Errorf("Frames() = %d, want 10", w.Frames())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data := buf.Bytes()

	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"riff size", binary.LittleEndian.Uint32(data[4:8]), 36 + 60},
		{"fmt size", binary.LittleEndian.Uint32(data[16:20]), 16},
		{"audio format", uint32(binary.LittleEndian.Uint16(data[20:22])), 1},
		{"channels", uint32(binary.LittleEndian.Uint16(data[22:24])), 2},
		{"sample rate", binary.LittleEndian.Uint32(data[24:28]), 48000},
		{"byte rate", binary.LittleEndian.Uint32(data[28:32]), 288000},
		{"block align", uint32(binary.LittleEndian.Uint16(data[32:34])), 6},
		{"bits per sample", uint32(binary.LittleEndian.Uint16(data[34:36])), 24},
		{"data size", binary.LittleEndian.Uint32(data[40:44]), 60},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" ||
		string(data[12:16]) != "fmt " || string(data[36:40]) != "data" {
		t.Errorf("chunk markers wrong: % x", data[:40])
	}

	if !bytes.Equal(data[HeaderSize:], frames) {
		t.Error("sample data does not match written frames")
	}
}

func TestWriter_OddLengthIsPadded(t *testing.T) {
	t.Parallel()

	format := audio.Format{Channels: 1, SampleWidth: 1, FrameRate: 8000}
	buf := audiotest.NewBuffer(nil)

	w, err := Create(buf, format)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := w.WriteFrames([]byte{1, 2, 3}); err != nil {
		t.Fatalf("WriteFrames() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != HeaderSize+4 {
		t.Fatalf("file size = %d, want %d", len(data), HeaderSize+4)
	}
	if got := binary.LittleEndian.Uint32(data[40:44]); got != 3 {
		t.Errorf("data size = %d, want 3 (pad byte excluded)", got)
	}
	if got := binary.LittleEndian.Uint32(data[4:8]); got != 40 {
		t.Errorf("RIFF size = %d, want 40 (pad byte included)", got)
	}
}

func TestWriter_PartialFrame(t *testing.T) {
	t.Parallel()

	w, err := Create(audiotest.NewBuffer(nil), stereo16)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := w.WriteFrames([]byte{1, 2, 3}); !errors.Is(err, ErrPartialFrame) {
		t.Errorf("WriteFrames() error = %v, want ErrPartialFrame", err)
	}
}

func TestWriter_UseAfterClose(t *testing.T) {
	t.Parallel()

	w, err := Create(audiotest.NewBuffer(nil), stereo16)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := w.WriteFrames([]byte{0, 0, 0, 0}); !errors.Is(err, ErrWriterClosed) {
		t.Errorf("WriteFrames() after Close error = %v, want ErrWriterClosed", err)
	}
	if err := w.Close(); !errors.Is(err, ErrWriterClosed) {
		t.Errorf("second Close() error = %v, want ErrWriterClosed", err)
	}
}

func TestCreate_InvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := Create(audiotest.NewBuffer(nil), audio.Format{Channels: 0, SampleWidth: 2, FrameRate: 8000})
	if !errors.Is(err, audio.ErrInvalidFormat) {
		t.Errorf("Create() error = %v, want ErrInvalidFormat", err)
	}
}

func TestWriter_ReadableByGoAudio(t *testing.T) {
	t.Parallel()

	format := audio.Format{Channels: 2, SampleWidth: 2, FrameRate: 22050}
	samples := audiotest.Samples(50, 2)

	buf := audiotest.NewBuffer(nil)
	w, err := Create(buf, format)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := w.WriteFrames(audiotest.PCM(samples, 2)); err != nil {
		t.Fatalf("WriteFrames() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	gotFormat, gotSamples, err := audiotest.DecodeWAV(audiotest.NewBuffer(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeWAV() error = %v", err)
	}
	if gotFormat != format {
		t.Errorf("decoded format = %+v, want %+v", gotFormat, format)
	}
	if len(gotSamples) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(gotSamples), len(samples))
	}
	for i := range samples {
		if gotSamples[i] != samples[i] {
			t.Fatalf("sample[%d] = %d, want %d", i, gotSamples[i], samples[i])
		}
	}
}

func TestWriteWAV_MatchesWriter(t *testing.T) {
	t.Parallel()

	format := audio.Format{Channels: 1, SampleWidth: 1, FrameRate: 11025}
	frames := audiotest.PCM(audiotest.Samples(7, 1), 1)

	oneShot := new(bytes.Buffer)
	if err := WriteWAV(oneShot, format, frames); err != nil {
		t.Fatalf("WriteWAV() error = %v", err)
	}

	streamed := audiotest.NewBuffer(nil)
	w, err := Create(streamed, format)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := w.WriteFrames(frames); err != nil {
		t.Fatalf("WriteFrames() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if !bytes.Equal(oneShot.Bytes(), streamed.Bytes()) {
		t.Error("WriteWAV and Writer produced different files")
	}
}

func BenchmarkWriter_WriteFrames(b *testing.B) {
	frames := make([]byte, 4096*stereo16.BlockAlign())

	for i := 0; i < b.N; i++ {
		w, _ := Create(audiotest.NewBuffer(nil), stereo16)
		_ = w.WriteFrames(frames)
		_ = w.Close()
	}
}
