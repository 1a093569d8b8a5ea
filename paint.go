package datatable

import (
	"github.com/mattn/go-runewidth"
)

// panelIndent is the left inset of expanded panel content.
const panelIndent = 2

// MeasureRow returns the number of lines tree occupies at the given width.
func MeasureRow(tree *RowTree, width int, gap int) int {
	h := measureInline(tree.Row, width, gap)
	if tree.Panel != nil {
		h += measurePanel(tree.Panel, width)
	}
	return h
}

// PaintRow paints tree at (x, y) across width cells and returns the number
// of lines used. gap is the number of blank cells between row children.
func (b *Buffer) PaintRow(tree *RowTree, x, y, width, gap int) int {
	h := measureInline(tree.Row, width, gap)
	b.paintInline(tree.Row, x, y, width, h, gap, Style{})
	if tree.Panel != nil {
		h += b.paintPanel(tree.Panel, x, y+h, width)
	}
	return h
}

// slotWidths splits width among children: fixed widths first, the rest
// shared equally with any remainder going to the leftmost flexible slots.
func slotWidths(children []*Element, width, gap int) []int {
	out := make([]int, len(children))
	if len(children) == 0 {
		return out
	}
	free := width - gap*(len(children)-1)
	flex := 0
	for i, c := range children {
		if c.Width > 0 {
			out[i] = c.Width
			free -= c.Width
		} else {
			flex++
		}
	}
	if flex == 0 || free <= 0 {
		return out
	}
	share, extra := free/flex, free%flex
	for i, c := range children {
		if c.Width > 0 {
			continue
		}
		out[i] = share
		if extra > 0 {
			out[i]++
			extra--
		}
	}
	return out
}

func measureInline(el *Element, width, gap int) int {
	if len(el.Children) == 0 {
		return len(textLines(el, width))
	}
	h := 1
	for i, w := range slotWidths(el.Children, width, gap) {
		// nested children sit flush against each other
		h = max(h, measureInline(el.Children[i], w, 0))
	}
	return h
}

// paintInline fills el's box with its style, then lays its children out
// left to right. Leaf elements paint their text and own their whole box.
func (b *Buffer) paintInline(el *Element, x, y, width, height, gap int, inherited Style) {
	style := inherited.Merge(el.Style)
	b.FillRect(x, y, width, height, NewCell(' ', style))
	for dy := 0; dy < height; dy++ {
		b.claim(x, y+dy, width, el)
	}
	if len(el.Children) == 0 {
		for i, line := range textLines(el, width) {
			if i >= height {
				break
			}
			b.WriteStringClipped(x, y+i, alignText(line, width, el.Align), style, width)
		}
		return
	}
	cx := x
	for i, w := range slotWidths(el.Children, width, gap) {
		if w > 0 {
			b.paintInline(el.Children[i], cx, y, w, height, 0, style)
		}
		cx += w + gap
	}
}

func measurePanel(panel *Element, width int) int {
	inner := width - panelIndent
	h := 0
	for _, c := range panel.Children {
		h += measureInline(c, inner, 0)
	}
	return max(h, 1)
}

func (b *Buffer) paintPanel(panel *Element, x, y, width int) int {
	h := measurePanel(panel, width)
	b.FillRect(x, y, width, h, NewCell(' ', panel.Style))
	for dy := 0; dy < h; dy++ {
		b.claim(x, y+dy, width, panel)
	}
	inner := width - panelIndent
	cy := y
	for _, c := range panel.Children {
		ch := measureInline(c, inner, 0)
		b.paintInline(c, x+panelIndent, cy, inner, ch, 0, panel.Style)
		cy += ch
	}
	return h
}

// textLines returns the display lines of a leaf element: wrapped when
// Wrap is set, otherwise a single line truncated with an ellipsis.
func textLines(el *Element, width int) []string {
	if el.Wrap {
		return wrapText(el.Text, width)
	}
	if runewidth.StringWidth(el.Text) > width {
		return []string{runewidth.Truncate(el.Text, width, "…")}
	}
	return []string{el.Text}
}

func alignText(s string, width int, a Align) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	switch a {
	case AlignRight:
		return runewidth.FillLeft(s, width)
	case AlignCenter:
		left := (width - sw) / 2
		return runewidth.FillRight(runewidth.FillLeft(s, sw+left), width)
	}
	return s
}
