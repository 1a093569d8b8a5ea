package datatable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	t.Run("NewBuffer", func(t *testing.T) {
		buf := NewBuffer(80, 24)
		assert.Equal(t, 80, buf.Width())
		assert.Equal(t, 24, buf.Height())

		for y := 0; y < buf.Height(); y++ {
			for x := 0; x < buf.Width(); x++ {
				if c := buf.Get(x, y); c.Rune != ' ' {
					t.Fatalf("expected space at (%d,%d), got %q", x, y, c.Rune)
				}
			}
		}
	})

	t.Run("InBounds", func(t *testing.T) {
		buf := NewBuffer(10, 10)

		tests := []struct {
			x, y   int
			expect bool
		}{
			{0, 0, true},
			{9, 9, true},
			{-1, 0, false},
			{0, -1, false},
			{10, 0, false},
			{0, 10, false},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expect, buf.InBounds(tt.x, tt.y), "InBounds(%d,%d)", tt.x, tt.y)
		}
	})

	t.Run("SetGet", func(t *testing.T) {
		buf := NewBuffer(10, 10)
		cell := NewCell('X', DefaultStyle().Foreground(Red))

		buf.Set(5, 5, cell)
		assert.True(t, buf.Get(5, 5).Equal(cell))
		assert.Equal(t, ' ', buf.Get(-1, -1).Rune)

		// out of bounds set is a no-op
		buf.Set(100, 100, cell)
	})

	t.Run("WriteStringClipped", func(t *testing.T) {
		buf := NewBuffer(10, 1)
		n := buf.WriteStringClipped(0, 0, "Hello World", DefaultStyle(), 5)
		assert.Equal(t, 5, n)
		assert.Equal(t, "Hello", buf.GetLine(0))
	})

	t.Run("WideRunes", func(t *testing.T) {
		buf := NewBuffer(6, 1)
		n := buf.WriteString(0, 0, "日本語", DefaultStyle())
		assert.Equal(t, 6, n)
		assert.Equal(t, rune(0), buf.Get(1, 0).Rune)
		assert.Equal(t, "日本語", buf.GetLine(0))

		// a wide rune that does not fit is dropped whole
		buf = NewBuffer(3, 1)
		assert.Equal(t, 2, buf.WriteString(0, 0, "日本", DefaultStyle()))
	})

	t.Run("StringTrimsLines", func(t *testing.T) {
		buf := NewBuffer(5, 2)
		buf.WriteString(0, 0, "ab", DefaultStyle())
		buf.WriteString(1, 1, "c", DefaultStyle())
		assert.Equal(t, "ab\n c", buf.String())
	})

	t.Run("Resize", func(t *testing.T) {
		buf := NewBuffer(4, 1)
		buf.WriteString(0, 0, "abcd", DefaultStyle())
		buf.Resize(2, 2)
		assert.Equal(t, "ab\n", buf.String())
	})

	t.Run("ClearDropsOwners", func(t *testing.T) {
		buf := NewBuffer(4, 2)
		el := &Element{Kind: KindText}
		buf.FillRect(1, 0, 2, 2, NewCell('#', Style{FG: Red}))
		buf.claim(0, 1, 4, el)
		assert.Equal(t, " ##\n ##", buf.String())
		assert.Same(t, el, buf.HitTest(3, 1))

		buf.Clear()
		assert.Equal(t, "\n", buf.String())
		assert.Nil(t, buf.HitTest(3, 1))
		assert.True(t, buf.Get(1, 0).Equal(EmptyCell()))
	})

	t.Run("RenderKeepsText", func(t *testing.T) {
		buf := NewBuffer(8, 1)
		buf.WriteString(0, 0, "ok", Style{FG: Green, Attr: AttrBold})
		buf.WriteString(3, 0, "no", Style{})
		assert.Contains(t, buf.Render(), "ok")
		assert.Contains(t, buf.Render(), "no")
	})
}

func paintOne(t *testing.T, p RowProps, width int) (*Buffer, *RowTree, int) {
	t.Helper()
	tree := NewRowView(p).Render()
	gap := p.Theme.gap(p.Dense)
	h := MeasureRow(tree, width, gap)
	buf := NewBuffer(width, h)
	require.Equal(t, h, buf.PaintRow(tree, 0, 0, width, gap))
	return buf, tree, h
}

func TestPaintRow(t *testing.T) {
	plain := &Theme{CellGap: 2, DenseCellGap: 1}

	t.Run("EqualShares", func(t *testing.T) {
		p := annProps()
		p.Theme = plain
		buf, tree, h := paintOne(t, p, 20)

		assert.Equal(t, 1, h)
		assert.Equal(t, "Ann        30", buf.GetLine(0))

		name := tree.Row.Children[0].Children[0]
		assert.Same(t, name, buf.HitTest(0, 0))
		assert.Same(t, name, buf.HitTest(8, 0), "padding inside the cell belongs to its text")
		assert.Same(t, tree.Row, buf.HitTest(9, 0), "gap belongs to the row")
		assert.Same(t, tree.Row.Children[1].Children[0], buf.HitTest(11, 0))
		assert.Nil(t, buf.HitTest(20, 0))
	})

	t.Run("DenseGap", func(t *testing.T) {
		p := annProps()
		p.Theme = plain
		p.Dense = true
		buf, _, _ := paintOne(t, p, 21)
		// 20 free cells split 10/10 with a one-cell gap
		assert.Equal(t, "Ann        30", buf.GetLine(0))
	})

	t.Run("ExpandedPanel", func(t *testing.T) {
		p := annProps()
		p.Theme = plain
		p.ExpandableRows = true
		p.DefaultExpanded = true
		p.ExpandableRowsComponent = "hello world"
		buf, tree, h := paintOne(t, p, 20)

		require.Equal(t, 2, h)
		assert.Equal(t, ExpandedGlyph, string(buf.Get(19, 0).Rune))
		assert.Equal(t, KindExpander, buf.HitTest(19, 0).Kind)
		assert.Equal(t, "  hello world", buf.GetLine(1))
		assert.Same(t, tree.Panel, buf.HitTest(0, 1))
		assert.Same(t, tree.Panel.Children[0], buf.HitTest(3, 1))
		assert.False(t, buf.HitTest(3, 1).PropagatesClicks())
	})

	t.Run("Checkbox", func(t *testing.T) {
		p := annProps()
		p.Theme = plain
		p.SelectableRows = true
		buf, _, _ := paintOne(t, p, 20)
		assert.True(t, strings.HasPrefix(buf.GetLine(0), "[ ]  Ann"))
		assert.Equal(t, KindCheckbox, buf.HitTest(1, 0).Kind)
	})

	t.Run("FixedWidthTruncates", func(t *testing.T) {
		p := annProps()
		p.Theme = plain
		p.Row = Row{"id": 1, "name": "Annabelle"}
		p.Columns = []Column{{ID: "name", Width: 4}}
		buf, _, _ := paintOne(t, p, 10)
		assert.Equal(t, "Ann…", buf.GetLine(0))
	})

	t.Run("AlignRight", func(t *testing.T) {
		p := annProps()
		p.Theme = plain
		p.Columns = []Column{NewColumn("age", "Age", Width(5), AlignTo(AlignRight))}
		buf, _, _ := paintOne(t, p, 10)
		assert.Equal(t, "   30", buf.GetLine(0))
	})

	t.Run("AlignCenter", func(t *testing.T) {
		assert.Equal(t, " ab  ", alignText("ab", 5, AlignCenter))
		assert.Equal(t, "ab", alignText("ab", 5, AlignLeft))
		assert.Equal(t, "abcdef", alignText("abcdef", 5, AlignRight))
	})

	t.Run("WrapGrowsRow", func(t *testing.T) {
		p := annProps()
		p.Theme = plain
		p.Row = Row{"id": 1, "note": "aa bb cc"}
		p.Columns = []Column{{ID: "note", Width: 4, Wrap: true}}
		buf, _, h := paintOne(t, p, 10)
		assert.Equal(t, 3, h)
		assert.Equal(t, "aa", buf.GetLine(0))
		assert.Equal(t, "cc", buf.GetLine(2))
	})

	t.Run("StylesCascade", func(t *testing.T) {
		p := annProps()
		p.Theme = &Theme{Row: Style{BG: Blue}, CellGap: 2}
		p.Columns = []Column{NewColumn("age", "Age", StyleSign(Style{FG: Green}, Style{FG: Red}))}
		buf, _, _ := paintOne(t, p, 10)
		assert.Equal(t, Style{FG: Green, BG: Blue}, buf.Get(0, 0).Style)
	})
}

func TestSlotWidths(t *testing.T) {
	tests := []struct {
		name   string
		widths []int
		total  int
		gap    int
		want   []int
	}{
		{"Empty", nil, 10, 1, []int{}},
		{"AllFlex", []int{0, 0, 0}, 10, 0, []int{4, 3, 3}},
		{"Mixed", []int{3, 0, 1}, 12, 1, []int{3, 6, 1}},
		{"Overflow", []int{8, 0}, 8, 1, []int{8, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			children := make([]*Element, len(tt.widths))
			for i, w := range tt.widths {
				children[i] = &Element{Width: w}
			}
			assert.Equal(t, tt.want, slotWidths(children, tt.total, tt.gap))
		})
	}
}
