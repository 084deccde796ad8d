package ui

import "testing"

func TestComputePos(t *testing.T) {
	rect := Rect{Pos: DisplayCoord{}, Size: DisplayCoord{Line: 24, Column: 80}}

	tests := []struct {
		name        string
		anchor      DisplayCoord
		size        DisplayCoord
		toAvoid     Rect
		preferAbove bool
		want        DisplayCoord
	}{
		{
			name:   "below the anchor",
			anchor: DisplayCoord{Line: 5, Column: 10},
			size:   DisplayCoord{Line: 3, Column: 20},
			want:   DisplayCoord{Line: 6, Column: 10},
		},
		{
			name:        "above when preferred",
			anchor:      DisplayCoord{Line: 10, Column: 10},
			size:        DisplayCoord{Line: 3, Column: 20},
			preferAbove: true,
			want:        DisplayCoord{Line: 7, Column: 10},
		},
		{
			name:        "preferred above falls through near the top",
			anchor:      DisplayCoord{Line: 1, Column: 10},
			size:        DisplayCoord{Line: 3, Column: 20},
			preferAbove: true,
			want:        DisplayCoord{Line: 2, Column: 10},
		},
		{
			name:   "flips above when the bottom overflows",
			anchor: DisplayCoord{Line: 22, Column: 10},
			size:   DisplayCoord{Line: 5, Column: 20},
			want:   DisplayCoord{Line: 17, Column: 10},
		},
		{
			name:   "clamps to the right edge",
			anchor: DisplayCoord{Line: 5, Column: 70},
			size:   DisplayCoord{Line: 3, Column: 20},
			want:   DisplayCoord{Line: 6, Column: 60},
		},
		{
			name:    "pushed above an avoid rect",
			anchor:  DisplayCoord{Line: 10, Column: 0},
			size:    DisplayCoord{Line: 2, Column: 80},
			toAvoid: Rect{Pos: DisplayCoord{Line: 11, Column: 0}, Size: DisplayCoord{Line: 5, Column: 80}},
			want:    DisplayCoord{Line: 8, Column: 0},
		},
		{
			name:    "pushed below when above runs out",
			anchor:  DisplayCoord{Line: 1, Column: 0},
			size:    DisplayCoord{Line: 4, Column: 80},
			toAvoid: Rect{Pos: DisplayCoord{Line: 2, Column: 0}, Size: DisplayCoord{Line: 5, Column: 80}},
			want:    DisplayCoord{Line: 7, Column: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computePos(tt.anchor, tt.size, rect, tt.toAvoid, tt.preferAbove)
			if got != tt.want {
				t.Errorf("computePos = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputePosAvoidsWhenAlternativeExists(t *testing.T) {
	rect := Rect{Size: DisplayCoord{Line: 24, Column: 80}}
	toAvoid := Rect{Pos: DisplayCoord{Line: 12, Column: 0}, Size: DisplayCoord{Line: 4, Column: 80}}

	for line := 2; line < 22; line++ {
		anchor := DisplayCoord{Line: line, Column: 0}
		size := DisplayCoord{Line: 2, Column: 40}
		pos := computePos(anchor, size, rect, toAvoid, false)
		if pos.Line < 0 {
			continue // caller rejects out-of-rect placements
		}
		// No row may be shared with the avoid rect
		avoidEnd := toAvoid.Pos.Line + toAvoid.Size.Line
		if pos.Line < avoidEnd && pos.Line+size.Line > toAvoid.Pos.Line {
			t.Errorf("anchor line %d: pos %+v shares rows with the avoid rect", line, pos)
		}
	}
}
