package sidebar

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/Paintersrp/studio/internal/organizer"
)

// rowHeight is the fixed cell height of every row in both view modes.
// Keeping it uniform is what makes the midpoint rule behave the same
// for rail and expanded rendering.
const rowHeight = 2

const ellipsis = "…"

// rowDelegate paints rows for the sidebar list. It is render-only; all
// input handling lives on the Model so the list never swallows keys.
type rowDelegate struct {
	sb *Model
}

func (d rowDelegate) Height() int  { return rowHeight }
func (d rowDelegate) Spacing() int { return 0 }

func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(Row)
	if !ok {
		return
	}
	if m.Width() <= 0 {
		return
	}

	selected := index == m.Index()
	grabbed := d.sb.drag.Grabbed(row) || d.sb.grab.Grabbed(row)

	hoverBefore, hoverAfter := false, false
	if hover := d.sb.drag.Hover(); hover != nil && hover.Row.key() == row.key() {
		hoverBefore = hover.Side == organizer.SideBefore
		hoverAfter = !hoverBefore
	}

	// Every line opens with a two cell gutter so the insertion
	// indicator and the grab mark never shift the row text.
	top := "  "
	if hoverBefore {
		top = indicatorStyle.Render(indicatorBefore)
	} else if grabbed {
		top = grabbedStyle.Render(grabbedGlyph)
	}
	bottom := "  "
	if hoverAfter {
		bottom = indicatorStyle.Render(indicatorAfter)
	}

	textWidth := max(0, m.Width()-2)
	main, tail, sub := d.rowText(row)
	main = truncate.StringWithTail(main, uint(max(0, textWidth-lipgloss.Width(tail))), ellipsis)
	sub = truncate.StringWithTail(sub, uint(textWidth), ellipsis)

	line := d.styleMain(row, main, selected, grabbed)
	if tail != "" {
		line += d.styleTail(row, tail, selected, grabbed)
	}
	if sub != "" {
		sub = descStyle.Render(sub)
	}

	fmt.Fprintf(w, "%s%s\n%s%s", top, line, bottom, sub)
}

// rowText builds the unstyled row text: the main line, an optional tail
// segment styled on its own (category count, active-mode mark), and the
// dim second line. The rail keeps bare icons so the row boxes stay
// identical while the text shrinks.
func (d rowDelegate) rowText(row Row) (main, tail, sub string) {
	if d.sb.rail {
		switch row.Kind {
		case RowCategory:
			main = d.collapseGlyph(row)
		case RowPlaceholder:
			main = "∙"
		default:
			main = row.Icon
			if row.ID == d.sb.activeMode {
				tail = "●"
			}
		}
		return main, tail, ""
	}

	switch row.Kind {
	case RowCategory:
		main = d.collapseGlyph(row) + row.Label
		tail = fmt.Sprintf(" (%d)", row.Count)
	case RowPlaceholder:
		main = "∙ drop here"
	default:
		main = fmt.Sprintf("%s %s", row.Icon, row.Label)
		if row.ID == d.sb.activeMode {
			tail = activeGlyph
		}
		sub = "   " + row.Desc
	}
	return main, tail, sub
}

func (d rowDelegate) collapseGlyph(row Row) string {
	if row.Collapsed {
		return collapsedGlyph
	}
	return expandedGlyph
}

func (d rowDelegate) styleMain(row Row, text string, selected, grabbed bool) string {
	switch {
	case grabbed:
		return grabbedStyle.Render(text)
	case selected:
		return selectedItemStyle.Render(text)
	case row.Kind == RowCategory:
		return categoryStyle.Render(text)
	case row.Kind == RowPlaceholder:
		return placeholderStyle.Render(text)
	}
	return featureStyle.Render(text)
}

func (d rowDelegate) styleTail(row Row, text string, selected, grabbed bool) string {
	switch {
	case grabbed:
		return grabbedStyle.Render(text)
	case selected:
		return selectedItemStyle.Render(text)
	case row.Kind == RowCategory:
		return countStyle.Render(text)
	}
	return activeMarkStyle.Render(text)
}
