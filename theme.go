package datatable

// Theme provides the row styles a RowView layers together.
// Styles are merged in field order: Row, Dense, Striped, Hover, Pointer,
// Selected, then any conditional row style on top.
type Theme struct {
	Row      Style // base row style
	Dense    Style // applied when the row is dense
	Striped  Style // applied to odd rows when striping is on
	Hover    Style // applied while hovered with HighlightOnHover
	Pointer  Style // applied while hovered when the row shows a pointer
	Selected Style // applied when SelectableRowsHighlight and Selected

	Checkbox Style
	Expander Style
	Panel    Style

	CellGap      int // blank columns between cells
	DenseCellGap int
}

// Pre-defined themes

// ThemeDark is a dark theme with light text on dark background.
var ThemeDark = Theme{
	Row:          Style{FG: White},
	Striped:      Style{BG: PaletteColor(235)},
	Hover:        Style{BG: PaletteColor(238)},
	Pointer:      Style{}.Underline(),
	Selected:     Style{}.Foreground(BrightWhite).Background(Blue),
	Checkbox:     Style{FG: BrightCyan},
	Expander:     Style{FG: BrightCyan},
	Panel:        Style{FG: BrightBlack},
	CellGap:      2,
	DenseCellGap: 1,
}

// ThemeLight is a light theme with dark text on light background.
var ThemeLight = Theme{
	Row:          Style{FG: Black},
	Striped:      Style{BG: PaletteColor(254)},
	Hover:        Style{BG: PaletteColor(252)},
	Pointer:      Style{}.Underline(),
	Selected:     Style{FG: Black, BG: Hex(0xBFDBFE)},
	Checkbox:     Style{FG: Blue},
	Expander:     Style{FG: Blue},
	Panel:        Style{FG: BrightBlack},
	CellGap:      2,
	DenseCellGap: 1,
}

// ThemeMonochrome is a minimal theme using only attributes.
var ThemeMonochrome = Theme{
	Row:          Style{},
	Striped:      Style{}.Dim(),
	Hover:        Style{}.Bold(),
	Pointer:      Style{}.Underline(),
	Selected:     Style{}.Inverse(),
	Checkbox:     Style{}.Bold(),
	Expander:     Style{}.Bold(),
	Panel:        Style{}.Italic(),
	CellGap:      2,
	DenseCellGap: 1,
}

// DefaultTheme is used when RowProps.Theme is nil.
var DefaultTheme = ThemeDark

// rowStyle layers the theme styles selected by the given flags.
func (t *Theme) rowStyle(dense, striped, hovered, pointer, selected bool) Style {
	s := t.Row
	if dense {
		s = s.Merge(t.Dense)
	}
	if striped {
		s = s.Merge(t.Striped)
	}
	if hovered {
		s = s.Merge(t.Hover)
	}
	if pointer {
		s = s.Merge(t.Pointer)
	}
	if selected {
		s = s.Merge(t.Selected)
	}
	return s
}

func (t *Theme) gap(dense bool) int {
	if dense {
		return t.DenseCellGap
	}
	return t.CellGap
}
