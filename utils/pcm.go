// SPDX-License-Identifier: EPL-2.0

package utils

// PutWAVSample stores the signed sample v in dst using the WAV on-disk
// layout for width bytes: little endian two's complement, except 8-bit
// samples which WAV keeps unsigned with a 128 offset.
// dst must hold at least width bytes.
func PutWAVSample(dst []byte, v int, width int) {
	if width == 1 {
		dst[0] = byte(v + 128)
		return
	}

	u := uint32(int32(v))
	for i := range width {
		dst[i] = byte(u >> (8 * i))
	}
}

// WAVSample is the inverse of PutWAVSample.
func WAVSample(src []byte, width int) int {
	if width == 1 {
		return int(src[0]) - 128
	}

	var u uint32
	for i := range width {
		u |= uint32(src[i]) << (8 * i)
	}

	// Sign extend from the top bit of the stored width
	shift := 32 - 8*width
	return int(int32(u<<shift) >> shift)
}
