// Package width measures strings in terminal columns rather than bytes
// or codepoints. Grapheme clusters are segmented with uniseg and measured
// with runewidth, so East Asian characters and emoji count as two cells.
package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ColumnLength returns the display width of s in terminal cells.
func ColumnLength(s string) int {
	if s == "" {
		return 0
	}
	// Fast path: printable ASCII is one cell per byte
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		w += clusterWidth(cluster)
		s = rest
		state = newState
	}
	return w
}

// ByteCountTo returns the byte length of the longest prefix of s whose
// column length does not exceed col. Cluster boundaries are never split.
func ByteCountTo(s string, col int) int {
	if col <= 0 {
		return 0
	}
	if isPlainASCII(s) {
		if col >= len(s) {
			return len(s)
		}
		return col
	}
	bytes := 0
	cols := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		w := clusterWidth(cluster)
		if cols+w > col {
			break
		}
		cols += w
		bytes += len(cluster)
		s = rest
		state = newState
	}
	return bytes
}

// clusterWidth returns the cell width of a single grapheme cluster,
// taken from its first rune.
func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// isPlainASCII reports whether s is printable ASCII only
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
