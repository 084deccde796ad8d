package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// WrapLines wraps s into lines of at most maxWidth columns. Wrapping
// prefers word boundaries; a single word wider than maxWidth starts a
// new line and is broken at cluster boundaries. A grapheme cluster
// wider than maxWidth gets a line of its own, which is then wider than
// maxWidth. Explicit newlines in s are respected.
func WrapLines(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapParagraph(para, maxWidth)...)
	}
	return lines
}

func wrapParagraph(s string, maxWidth int) []string {
	if ColumnLength(s) <= maxWidth {
		return []string{s}
	}

	var lines []string
	var line strings.Builder
	lineCols := 0

	flush := func() {
		lines = append(lines, strings.TrimRight(line.String(), " "))
		line.Reset()
		lineCols = 0
	}

	for _, word := range strings.Split(s, " ") {
		wordCols := ColumnLength(word)

		// Break words that can never fit on one line
		for wordCols > maxWidth {
			if lineCols > 0 {
				flush()
			}
			cut := ByteCountTo(word, maxWidth)
			if cut == 0 {
				// Cluster wider than the line; give it a line of its own
				cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(word, -1)
				cut = len(cluster)
			}
			line.WriteString(word[:cut])
			flush()
			word = word[cut:]
			wordCols = ColumnLength(word)
		}

		sep := 0
		if lineCols > 0 {
			sep = 1
		}
		if lineCols+sep+wordCols > maxWidth {
			flush()
			sep = 0
		}
		if sep == 1 {
			line.WriteByte(' ')
			lineCols++
		}
		line.WriteString(word)
		lineCols += wordCols
	}
	if lineCols > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}
