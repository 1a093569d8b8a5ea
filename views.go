package datatable

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// CellView renders one data cell. key is the stable cell key
// (cell-<columnId>-<rowKey>) and becomes the element's Key and ID.
type CellView func(col Column, row Row, key string) *Element

// CheckboxCellView renders the selection control of a selectable row.
type CheckboxCellView func(name string, row Row, selected bool) *Element

// ExpanderCellView renders the expand/collapse control. Activating the
// returned element must call onToggle unless disabled.
type ExpanderCellView func(expanded bool, row Row, onToggle func(), disabled bool) *Element

// ExpandedPanelView renders the detail panel under an expanded row.
// extendedRowStyle is nil unless conditional styles are inherited.
type ExpandedPanelView func(data Row, extendedRowStyle *Style, children any) *Element

// Views bundles the collaborators a RowView composes. Nil fields fall back
// to the package defaults.
type Views struct {
	Cell     CellView
	Checkbox CheckboxCellView
	Expander ExpanderCellView
	Panel    ExpandedPanelView
	Style    StyleResolver
}

func (v Views) withDefaults() Views {
	if v.Cell == nil {
		v.Cell = DefaultCell
	}
	if v.Checkbox == nil {
		v.Checkbox = DefaultCheckbox
	}
	if v.Expander == nil {
		v.Expander = DefaultExpander
	}
	if v.Panel == nil {
		v.Panel = DefaultPanel
	}
	if v.Style == nil {
		v.Style = ConditionalStyleFor
	}
	return v
}

// Expander glyphs.
const (
	ExpandedGlyph  = "▾"
	CollapsedGlyph = "▸"
)

// DefaultCell renders the formatted column value. The cell and its text are
// tagged so row clicks pass through, unless the column opts out.
func DefaultCell(col Column, row Row, key string) *Element {
	text := &Element{
		Kind:  KindText,
		Text:  col.Text(row),
		Align: col.Align,
		Wrap:  col.Wrap,
	}
	if col.Style != nil {
		text.Style = col.Style(row)
	}
	cell := &Element{
		Kind:     KindCell,
		ID:       key,
		Key:      key,
		Role:     "gridcell",
		Width:    col.Width,
		Align:    col.Align,
		Children: []*Element{text},
	}
	if !col.IgnoreRowClick && !col.Button {
		cell.AllowPropagation()
		text.AllowPropagation()
	}
	return cell
}

// DefaultCheckbox renders "[x]" or "[ ]".
func DefaultCheckbox(name string, row Row, selected bool) *Element {
	glyph := "[ ]"
	if selected {
		glyph = "[x]"
	}
	return &Element{
		Kind:  KindCheckbox,
		Name:  name,
		Key:   name,
		Role:  "checkbox",
		Text:  glyph,
		Width: 3,
	}
}

// DefaultExpander renders a disclosure triangle that toggles on activation.
func DefaultExpander(expanded bool, row Row, onToggle func(), disabled bool) *Element {
	glyph := CollapsedGlyph
	if expanded {
		glyph = ExpandedGlyph
	}
	e := &Element{
		Kind:     KindExpander,
		Key:      "expander",
		Role:     "button",
		Text:     glyph,
		Width:    1,
		Disabled: disabled,
	}
	if disabled {
		e.Style = Style{}.Dim()
		e.Activate = func() {}
	} else {
		e.Activate = onToggle
	}
	return e
}

// DefaultPanel renders the expandable content beneath a row. children may be
// a string, a fmt.Stringer, a func(Row) string, a func(Row) *Element or an
// *Element; text content is word-wrapped when painted.
func DefaultPanel(data Row, extendedRowStyle *Style, children any) *Element {
	p := &Element{Kind: KindPanel, Role: "region"}
	if extendedRowStyle != nil {
		p.Style = *extendedRowStyle
	}
	switch c := children.(type) {
	case nil:
	case *Element:
		p.Children = []*Element{c}
	case func(Row) *Element:
		if el := c(data); el != nil {
			p.Children = []*Element{el}
		}
	case func(Row) string:
		p.Children = []*Element{panelText(c(data))}
	case string:
		p.Children = []*Element{panelText(c)}
	case fmt.Stringer:
		p.Children = []*Element{panelText(c.String())}
	default:
		p.Children = []*Element{panelText(fmt.Sprint(c))}
	}
	return p
}

func panelText(s string) *Element {
	return &Element{Kind: KindText, Text: s, Wrap: true}
}

// wrapText wraps s to width columns, returning one entry per line.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	return strings.Split(wordwrap.String(s, width), "\n")
}
