// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV files frame by frame.
//
// Headers are parsed with github.com/go-audio/wav; sample data is then
// accessed directly so frames can be copied without decoding.
//
// # Supported Formats
//
//   - PCM (format tag 1) and WAVE_FORMAT_EXTENSIBLE holding PCM
//   - 8, 16, 24 and 32-bit samples
//   - Any channel count and sample rate
//
// # Reading
//
//	file, _ := os.Open("audio.wav")
//	c, err := wav.Open(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer c.Close()
//
//	_ = c.Seek(44100)            // one second in at 44.1 kHz
//	data, err := c.ReadFrames(4410)
//
// Seek is random access; ReadFrames returns audio.ErrShortRead when the
// data chunk is shorter than its header claims.
//
// # Writing
//
// Writer streams frames and finalizes the header on Close:
//
//	out, _ := os.Create("slice.wav")
//	w, _ := wav.Create(out, c.Format())
//	_ = w.WriteFrames(data)
//	_ = w.Close()   // patches RIFF and data lengths
//	_ = out.Close()
//
// WriteWAV writes a whole file in one pass to any io.Writer.
package wav
