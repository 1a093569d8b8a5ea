package datatable

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Buffer is a 2D grid of cells representing a drawable surface. Each cell
// also remembers the deepest element painted over it, which is what
// HitTest returns.
type Buffer struct {
	cells  []Cell
	owners []*Element
	width  int
	height int
}

// NewBuffer creates a new buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}
	return &Buffer{
		cells:  cells,
		owners: make([]*Element, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the buffer width.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height.
func (b *Buffer) Height() int {
	return b.height
}

// InBounds returns true if the given coordinates are within the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// index converts x,y coordinates to a slice index.
func (b *Buffer) index(x, y int) int {
	return y*b.width + x
}

// Get returns the cell at the given coordinates.
// Returns an empty cell if out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[b.index(x, y)]
}

// Set sets the cell at the given coordinates.
// Does nothing if out of bounds.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)] = c
}

// HitTest returns the deepest element painted at the given coordinates,
// or nil if nothing was painted there.
func (b *Buffer) HitTest(x, y int) *Element {
	if !b.InBounds(x, y) {
		return nil
	}
	return b.owners[b.index(x, y)]
}

// claim records el as the owner of a horizontal span.
func (b *Buffer) claim(x, y, width int, el *Element) {
	for i := 0; i < width; i++ {
		if b.InBounds(x+i, y) {
			b.owners[b.index(x+i, y)] = el
		}
	}
}

// Fill fills the entire buffer with the given cell.
func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// Clear clears the buffer to empty cells with default style and drops
// element ownership.
func (b *Buffer) Clear() {
	b.Fill(EmptyCell())
	clear(b.owners)
}

// FillRect fills a rectangular region with the given cell.
func (b *Buffer) FillRect(x, y, width, height int, c Cell) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			b.Set(x+dx, y+dy, c)
		}
	}
}

// WriteString writes a string at the given coordinates with the given style.
// Wide runes take two cells; the second holds rune 0.
// Returns the number of cells written.
func (b *Buffer) WriteString(x, y int, s string, style Style) int {
	return b.WriteStringClipped(x, y, s, style, b.width-x)
}

// WriteStringClipped writes a string, stopping at maxWidth cells.
// Returns the number of cells written.
func (b *Buffer) WriteStringClipped(x, y int, s string, style Style, maxWidth int) int {
	written := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if written+w > maxWidth || !b.InBounds(x+w-1, y) {
			break
		}
		b.Set(x, y, NewCell(r, style))
		if w == 2 {
			b.Set(x+1, y, NewCell(0, style))
		}
		x += w
		written += w
	}
	return written
}

// GetLine returns the content of a single line as a string (trimmed).
func (b *Buffer) GetLine(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		if r := b.Get(x, y).Rune; r != 0 {
			sb.WriteRune(r)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// String returns the buffer contents as plain text, one line per row with
// trailing spaces removed.
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.GetLine(y)
	}
	return strings.Join(lines, "\n")
}

// Render returns the buffer contents as ANSI-styled text. Runs of cells
// sharing a style are rendered together through lipgloss.
func (b *Buffer) Render() string {
	var out strings.Builder
	var run strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		cur := b.Get(0, y).Style
		run.Reset()
		for x := 0; x < b.width; x++ {
			c := b.Get(x, y)
			if c.Rune == 0 {
				continue
			}
			if c.Style != cur {
				out.WriteString(renderRun(run.String(), cur))
				run.Reset()
				cur = c.Style
			}
			run.WriteRune(c.Rune)
		}
		out.WriteString(renderRun(run.String(), cur))
	}
	return out.String()
}

func renderRun(s string, style Style) string {
	if s == "" || style.IsZero() {
		return s
	}
	return style.Lipgloss().Render(s)
}

// Resize resizes the buffer to new dimensions.
// Existing content is preserved where it fits; ownership is dropped.
func (b *Buffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}

	newCells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range newCells {
		newCells[i] = empty
	}

	minWidth := min(b.width, width)
	minHeight := min(b.height, height)
	for y := 0; y < minHeight; y++ {
		for x := 0; x < minWidth; x++ {
			newCells[y*width+x] = b.cells[y*b.width+x]
		}
	}

	b.cells = newCells
	b.owners = make([]*Element, width*height)
	b.width = width
	b.height = height
}
