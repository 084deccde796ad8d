package ui

// Rect is a screen region; an empty size means "absent"
type Rect struct {
	Pos  DisplayCoord
	Size DisplayCoord
}

func divRoundUp(a, b int) int {
	return (a-1)/b + 1
}

// computePos places a box of size relative to anchor, clamped to rect
// and pushed off toAvoid. preferAbove puts the box on the line above
// the anchor when there is room.
//
// The intersection test is inclusive on both axes, so touching edges
// count as overlap.
func computePos(anchor, size DisplayCoord, rect, toAvoid Rect, preferAbove bool) DisplayCoord {
	var pos DisplayCoord
	if preferAbove {
		pos = anchor.Sub(DisplayCoord{Line: size.Line})
		if pos.Line < 0 {
			preferAbove = false
		}
	}
	rectEnd := rect.Pos.Add(rect.Size)
	if !preferAbove {
		pos = anchor.Add(DisplayCoord{Line: 1})
		if pos.Line+size.Line > rectEnd.Line {
			pos.Line = max(rect.Pos.Line, anchor.Line-size.Line)
		}
	}
	if pos.Column+size.Column > rectEnd.Column {
		pos.Column = max(rect.Pos.Column, rectEnd.Column-size.Column)
	}

	if !toAvoid.Size.IsZero() {
		avoidEnd := toAvoid.Pos.Add(toAvoid.Size)
		end := pos.Add(size)

		if !(end.Line < toAvoid.Pos.Line || end.Column < toAvoid.Pos.Column ||
			pos.Line > avoidEnd.Line || pos.Column > avoidEnd.Column) {
			pos.Line = min(toAvoid.Pos.Line, anchor.Line) - size.Line
			// if above does not work, try below
			if pos.Line < 0 {
				pos.Line = max(avoidEnd.Line, anchor.Line)
			}
		}
	}

	return pos
}
