package ui

import (
	"strings"

	"github.com/lixenwraith/editerm/width"
)

// InfoStyle selects how an info box is anchored
type InfoStyle uint8

const (
	// InfoPrompt sits by the status row and carries the assistant art
	InfoPrompt InfoStyle = iota
	// InfoInline attaches to an anchor in the content area
	InfoInline
	InfoInlineAbove
	InfoInlineBelow
	// InfoMenuDoc docks to the side of the active menu
	InfoMenuDoc
	// InfoModal is centred in the content rect
	InfoModal
)

// infoWindow is the overlay holding the current info box
type infoWindow struct {
	Window
	title   string
	content string
	anchor  DisplayCoord
	face    Face
	style   InfoStyle
}

// Assistant art. The last row of each panel doubles as the idle frame
// used above the speech-bubble margin.
var assistantCat = []string{
	`  ___            `,
	` (__ \           `,
	`   / /          ╭`,
	`  .' '·.        │`,
	` '      ”       │`,
	` ╰       /\_/|  │`,
	`  | .         \ │`,
	`  ╰_J` + "`" + `    | | | ╯`,
	`      ' \__- _/  `,
	`      \_\   \_\  `,
	`                 `,
}

var assistantClippy = []string{
	" ╭──╮   ",
	" │  │   ",
	" @  @  ╭",
	" ││ ││ │",
	" ││ ││ ╯",
	" │╰─╯│  ",
	" ╰───╯  ",
	"        ",
}

var assistantDilbert = []string{
	`  დოოოოოდ   `,
	`  |     |   `,
	`  |     |  ╭`,
	`  |-ᱛ ᱛ-|  │`,
	` Ͼ   ∪   Ͽ │`,
	`  |     |  ╯`,
	` ˏ` + "`" + `-.ŏ.-´ˎ  `,
	`     @      `,
	`      @     `,
	`            `,
}

// infoBox is a built box: its outer size and one string per line
type infoBox struct {
	size     DisplayCoord
	contents []string
}

// makeInfoBox wraps message into a bordered speech bubble, optionally
// decorated with an assistant panel on the left.
func makeInfoBox(title, message string, maxWidth int, assistant []string) infoBox {
	var assistantSize DisplayCoord
	if len(assistant) != 0 {
		assistantSize = DisplayCoord{Line: len(assistant), Column: width.ColumnLength(assistant[0])}
	}

	var result infoBox

	maxBubbleWidth := maxWidth - assistantSize.Column - 6
	if maxBubbleWidth < 4 {
		return result
	}

	lines := width.WrapLines(message, maxBubbleWidth)

	bubbleWidth := width.ColumnLength(title) + 2
	for _, line := range lines {
		bubbleWidth = max(bubbleWidth, width.ColumnLength(line))
	}

	lineCount := max(assistantSize.Line-1, len(lines)+2)
	result.size = DisplayCoord{Line: lineCount, Column: bubbleWidth + assistantSize.Column + 4}
	assistantTopMargin := (lineCount - assistantSize.Line + 1) / 2

	for i := 0; i < lineCount; i++ {
		var line strings.Builder
		if len(assistant) != 0 {
			if i >= assistantTopMargin {
				line.WriteString(assistant[min(i-assistantTopMargin, assistantSize.Line-1)])
			} else {
				line.WriteString(assistant[assistantSize.Line-1])
			}
		}
		switch {
		case i == 0:
			if title == "" {
				line.WriteString("╭─" + strings.Repeat("─", bubbleWidth) + "─╮")
			} else {
				dashCount := bubbleWidth - width.ColumnLength(title) - 2
				left := strings.Repeat("─", dashCount/2)
				right := strings.Repeat("─", dashCount-dashCount/2)
				line.WriteString("╭─" + left + "┤" + title + "├" + right + "─╮")
			}
		case i < len(lines)+1:
			infoLine := lines[i-1]
			padding := bubbleWidth - width.ColumnLength(infoLine)
			line.WriteString("│ " + infoLine + strings.Repeat(" ", padding) + " │")
		case i == len(lines)+1:
			line.WriteString("╰─" + strings.Repeat("─", bubbleWidth) + "─╯")
		}
		result.contents = append(result.contents, line.String())
	}
	return result
}

// makeSimpleInfoBox is the wrapped lines verbatim, no border
func makeSimpleInfoBox(contents string, maxWidth int) infoBox {
	var box infoBox
	for _, line := range width.WrapLines(contents, maxWidth) {
		box.size.Line++
		box.size.Column = max(width.ColumnLength(line), box.size.Column)
		box.contents = append(box.contents, line)
	}
	return box
}
