package ui

// MenuStyle selects menu geometry and placement
type MenuStyle uint8

const (
	// MenuPrompt is a full-width grid on the row band opposite the status bar
	MenuPrompt MenuStyle = iota
	// MenuInline is a one-column list by an anchor in the content area
	MenuInline
	// MenuSearch is a one-line horizontal carousel sharing the status row
	MenuSearch
)

// menuWindow is the overlay holding the open menu. columns == 0 means
// horizontal, paginated; otherwise a column-major grid.
type menuWindow struct {
	Window
	items        []Line
	anchor       DisplayCoord
	fg           Face
	bg           Face
	style        MenuStyle
	columns      int
	firstItem    int
	selectedItem int
}

// heightLimit caps a menu's line count per style
func heightLimit(style MenuStyle) int {
	switch style {
	case MenuInline:
		return 10
	case MenuPrompt:
		return 10
	case MenuSearch:
		return 3
	}
	return 0
}

// MenuShow opens (or reopens) the menu with the given items. Items are
// trimmed to their cell width; a menu that cannot fit is not shown.
func (u *UI) MenuShow(items []Line, anchor DisplayCoord, fg, bg Face, style MenuStyle) {
	if u.menu.Present() {
		u.menu.Destroy()
		u.dirty = true
	}

	u.menu.fg = fg
	u.menu.bg = bg
	u.menu.style = style
	u.menu.anchor = anchor

	if u.dimensions.Column <= 2 {
		return
	}

	itemCount := len(items)
	u.menu.items = u.menu.items[:0]

	longest := 1
	for _, item := range items {
		longest = max(longest, item.Length())
	}

	maxWidth := u.dimensions.Column - 1
	isInline := style == MenuInline
	isSearch := style == MenuSearch
	switch {
	case isSearch:
		u.menu.columns = 0
	case isInline:
		u.menu.columns = 1
	default:
		u.menu.columns = max(maxWidth/(longest+1), 1)
	}

	maxHeight := min(heightLimit(style),
		max(anchor.Line, u.dimensions.Line-anchor.Line-1))
	height := 1
	if !isSearch {
		height = min(maxHeight, divRoundUp(itemCount, u.menu.columns))
	}

	maxLen := maxWidth
	if u.menu.columns > 1 && itemCount > 1 {
		maxLen = maxWidth/u.menu.columns - 1
	}

	for _, item := range items {
		u.menu.items = append(u.menu.items, item.Trim(0, maxLen))
	}

	if isInline {
		anchor.Line += u.contentLineOffset()
	}

	line := anchor.Line + 1
	column := max(0, min(anchor.Column, u.dimensions.Column-longest-1))
	switch {
	case isSearch:
		line = u.dimensions.Line
		if u.statusOnTop {
			line = 0
		}
		column = u.dimensions.Column / 2
	case !isInline:
		if u.statusOnTop {
			line = u.dimensions.Line + 1 - height
		} else {
			line = 0
		}
	case line+height > u.dimensions.Line:
		line = anchor.Line - height
	}

	var w int
	switch {
	case isSearch:
		w = u.dimensions.Column - u.dimensions.Column/2
	case isInline:
		w = min(longest+1, u.dimensions.Column)
	default:
		w = u.dimensions.Column
	}

	u.menu.Create(DisplayCoord{Line: line, Column: column}, DisplayCoord{Line: height, Column: w})
	u.menu.selectedItem = itemCount
	u.menu.firstItem = 0

	u.drawMenu()

	if u.info.Present() {
		u.InfoShow(u.info.title, u.info.content, u.info.anchor, u.info.face, u.info.style)
	}
}

// drawMenu paints the menu into its window: a paginated strip in
// horizontal mode, otherwise a column-major grid with a proportional
// scroll marker in the last column.
func (u *UI) drawMenu() {
	// menu show may not have created the window if it did not fit
	if !u.menu.Present() {
		return
	}

	itemCount := len(u.menu.items)
	if u.menu.columns == 0 {
		winWidth := u.menu.Size.Column - 4
		pos := 0

		u.menu.MoveCursor(DisplayCoord{})
		marker := "  "
		if u.menu.firstItem > 0 {
			marker = "< "
		}
		u.menu.Draw([]Atom{{Text: marker}}, u.menu.bg)

		i := u.menu.firstItem
		for ; i < itemCount && pos < winWidth; i++ {
			item := u.menu.items[i]
			itemWidth := item.Length()
			face := u.menu.bg
			if i == u.menu.selectedItem {
				face = u.menu.fg
			}
			u.menu.Draw(item, face)
			if pos+itemWidth < winWidth {
				u.menu.Draw([]Atom{{Text: " "}}, u.menu.bg)
			} else {
				u.menu.MoveCursor(DisplayCoord{Column: winWidth + 2})
				u.menu.Draw([]Atom{{Text: "…"}}, u.menu.bg)
			}
			pos += itemWidth + 1
		}

		u.menu.MoveCursor(DisplayCoord{Column: winWidth + 3})
		more := ">"
		if i == itemCount {
			more = " "
		}
		u.menu.Draw([]Atom{{Text: more}}, u.menu.bg)

		u.dirty = true
		return
	}

	menuLines := divRoundUp(itemCount, u.menu.columns)
	winHeight := u.menu.Size.Line
	columnWidth := (u.menu.Size.Column - 1) / u.menu.columns

	markHeight := min(divRoundUp(winHeight*winHeight, menuLines), winHeight)

	menuCols := divRoundUp(itemCount, winHeight)
	firstCol := u.menu.firstItem / winHeight
	markLine := (winHeight - markHeight) * firstCol / max(1, menuCols-u.menu.columns)

	for line := 0; line < winHeight; line++ {
		for col := 0; col < u.menu.columns; col++ {
			u.menu.MoveCursor(DisplayCoord{Line: line, Column: col * columnWidth})
			itemIdx := (firstCol+col)*winHeight + line
			face := u.menu.bg
			if itemIdx < itemCount && itemIdx == u.menu.selectedItem {
				face = u.menu.fg
			}
			var atoms []Atom
			if itemIdx < itemCount {
				atoms = u.menu.items[itemIdx]
			}
			u.menu.Draw(atoms, face)
		}
		mark := "░"
		if line >= markLine && line < markLine+markHeight {
			mark = "█"
		}
		u.menu.MoveCursor(DisplayCoord{Line: line, Column: u.menu.Size.Column - 1})
		u.menu.Draw([]Atom{{Text: mark}}, u.menu.bg)
	}
	u.dirty = true
}

// MenuSelect highlights item selected and scrolls it into view. An
// out-of-range index deselects.
func (u *UI) MenuSelect(selected int) {
	itemCount := len(u.menu.items)
	switch {
	case selected < 0 || selected >= itemCount:
		u.menu.selectedItem = -1
		u.menu.firstItem = 0
	case u.menu.columns == 0:
		u.menu.selectedItem = selected
		w := u.menu.Size.Column - 3
		first := 0
		itemCol := 0
		for i := 0; i <= selected; i++ {
			itemWidth := u.menu.items[i].Length() + 1
			if itemCol+itemWidth > w {
				first = i
				itemCol = itemWidth
			} else {
				itemCol += itemWidth
			}
		}
		u.menu.firstItem = first
	default:
		u.menu.selectedItem = selected
		rows := u.menu.Size.Line
		menuCols := divRoundUp(itemCount, rows)
		firstCol := u.menu.firstItem / rows
		selectedCol := selected / rows
		if selectedCol < firstCol {
			u.menu.firstItem = selectedCol * rows
		}
		if selectedCol >= firstCol+u.menu.columns {
			u.menu.firstItem = min(selectedCol, menuCols-u.menu.columns) * rows
		}
	}
	u.drawMenu()
}

// MenuHide closes the menu and recomputes the info box, which no
// longer has to avoid it.
func (u *UI) MenuHide() {
	if !u.menu.Present() {
		return
	}

	u.menu.items = nil
	u.menu.Destroy()
	u.dirty = true

	if u.info.Present() {
		u.InfoShow(u.info.title, u.info.content, u.info.anchor, u.info.face, u.info.style)
	}
}
