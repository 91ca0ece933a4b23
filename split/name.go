// SPDX-License-Identifier: EPL-2.0

package split

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Ext is the extension of every slice file; slices are always WAV.
const Ext = ".wav"

// SliceName returns the file name of the slice at the 0-based index.
// Numbers are padded to three digits, so beyond 999 slices the names no
// longer sort lexically.
func SliceName(stem string, index int) string {
	return fmt.Sprintf("%s_%03d%s", stem, index+1, Ext)
}

// Stem returns prefix when set, otherwise the base name of source without
// its extension.
func Stem(source, prefix string) string {
	if prefix != "" {
		return prefix
	}

	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
