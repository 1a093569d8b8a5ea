package datatable

import "fmt"

// RowProps configures a RowView. The caller owns every value here; the view
// reads them and reports changes back through the callbacks.
type RowProps struct {
	ID       any
	KeyField string
	Row      Row
	Columns  []Column
	RowIndex int // position in the table, odd rows are striped

	// Callbacks are invoked synchronously. Nil callbacks are skipped.
	OnRowClicked       func(row Row, e ClickEvent)
	OnRowDoubleClicked func(row Row, e ClickEvent)
	OnDrag             func(row Row, e DragEvent)
	OnDragEnd          func(row Row, e DragEvent, info DragInfo)
	OnRowExpandToggled func(expanded bool, row Row)

	SelectableRows             bool
	ExpandableRows             bool
	Striped                    bool
	HighlightOnHover           bool
	PointerOnHover             bool
	Dense                      bool
	Draggable                  bool
	ExpandableRowsHideExpander bool
	ExpandOnRowClicked         bool
	ExpandOnRowDoubleClicked   bool
	InheritConditionalStyles   bool
	Selected                   bool
	SelectableRowsHighlight    bool

	// DefaultExpanded sets the expansion state at creation and overwrites it
	// whenever the value changes.
	DefaultExpanded bool
	// DefaultExpanderDisabled stops row-body clicks from toggling expansion
	// and renders the expander disabled.
	DefaultExpanderDisabled bool

	ConditionalRowStyles    []ConditionalStyle
	ExpandableRowsComponent any

	Theme *Theme // nil = DefaultTheme
	Views Views
}

// RowView renders one data record as a row of cells with an optional
// expanded panel beneath it. It owns the row's expansion state and nothing
// else.
//
// A RowView is driven from a single UI loop and is not safe for concurrent use.
type RowView struct {
	props    RowProps
	views    Views
	expanded bool
	hovered  bool

	tree *RowTree // cached render, nil when stale
}

// NewRowView creates a row view. The row starts expanded when
// props.DefaultExpanded is set.
func NewRowView(props RowProps) *RowView {
	return &RowView{
		props:    props,
		views:    props.Views.withDefaults(),
		expanded: props.DefaultExpanded,
	}
}

// Props returns the current props.
func (v *RowView) Props() RowProps {
	return v.props
}

// SetProps replaces the props. A change of DefaultExpanded forces the
// expansion state to the new value, discarding any manual toggle.
func (v *RowView) SetProps(props RowProps) {
	if props.DefaultExpanded != v.props.DefaultExpanded {
		v.expanded = props.DefaultExpanded
	}
	v.props = props
	v.views = props.Views.withDefaults()
	v.tree = nil
}

// Expanded reports whether the detail panel is open.
func (v *RowView) Expanded() bool {
	return v.expanded
}

// Hovered reports whether the pointer is over the row.
func (v *RowView) Hovered() bool {
	return v.hovered
}

// SetHovered records pointer hover, which drives the hover and pointer styles.
func (v *RowView) SetHovered(h bool) {
	if v.hovered != h {
		v.hovered = h
		v.tree = nil
	}
}

// ToggleExpanded flips the expansion state and reports the new state to
// OnRowExpandToggled. This is the expander's path and is never gated.
func (v *RowView) ToggleExpanded() {
	next := !v.expanded
	v.expanded = next
	v.tree = nil
	if v.props.OnRowExpandToggled != nil {
		v.props.OnRowExpandToggled(next, v.props.Row)
	}
}

// HandleClick handles a click on the row body. It does nothing unless the
// exact target carries the allow-propagation tag.
func (v *RowView) HandleClick(e ClickEvent) {
	if !e.Target.PropagatesClicks() {
		return
	}
	if v.props.OnRowClicked != nil {
		v.props.OnRowClicked(v.props.Row, e)
	}
	if v.bodyExpands(v.props.ExpandOnRowClicked) {
		v.ToggleExpanded()
	}
}

// HandleDoubleClick handles a double click on the row body, gated like
// HandleClick.
func (v *RowView) HandleDoubleClick(e ClickEvent) {
	if !e.Target.PropagatesClicks() {
		return
	}
	if v.props.OnRowDoubleClicked != nil {
		v.props.OnRowDoubleClicked(v.props.Row, e)
	}
	if v.bodyExpands(v.props.ExpandOnRowDoubleClicked) {
		v.ToggleExpanded()
	}
}

func (v *RowView) bodyExpands(flag bool) bool {
	return flag && v.props.ExpandableRows && !v.props.DefaultExpanderDisabled
}

// HandleDrag forwards a drag step to OnDrag when the row is draggable.
func (v *RowView) HandleDrag(e DragEvent) {
	if v.props.Draggable && v.props.OnDrag != nil {
		v.props.OnDrag(v.props.Row, e)
	}
}

// HandleDragEnd forwards the end of a drag to OnDragEnd when the row is
// draggable.
func (v *RowView) HandleDragEnd(e DragEvent, info DragInfo) {
	if v.props.Draggable && v.props.OnDragEnd != nil {
		v.props.OnDragEnd(v.props.Row, e, info)
	}
}

// ShowPointer reports whether the row advertises itself as clickable.
func (v *RowView) ShowPointer() bool {
	p := v.props
	if p.DefaultExpanderDisabled {
		return false
	}
	return p.PointerOnHover || (p.ExpandableRows && (p.ExpandOnRowClicked || p.ExpandOnRowDoubleClicked))
}

func (v *RowView) theme() *Theme {
	if v.props.Theme != nil {
		return v.props.Theme
	}
	return &DefaultTheme
}

// Render builds the row tree. The result is cached until props, expansion
// or hover change; callers must not modify it.
func (v *RowView) Render() *RowTree {
	if v.tree != nil {
		return v.tree
	}
	p := v.props
	th := v.theme()
	key := p.Row.Key(p.KeyField)

	extended := v.views.Style(p.Row, p.ConditionalRowStyles)
	pointer := v.ShowPointer()

	style := th.rowStyle(
		p.Dense,
		p.Striped && p.RowIndex%2 == 1,
		p.HighlightOnHover && v.hovered,
		pointer && v.hovered,
		p.SelectableRowsHighlight && p.Selected,
	)
	if extended != nil {
		style = style.Merge(*extended)
	}

	row := &Element{
		Kind:     KindRow,
		ID:       "row-" + fmt.Sprint(p.ID),
		Key:      key,
		Role:     "row",
		Style:    style,
		Children: make([]*Element, 0, len(p.Columns)+2),
	}

	if p.SelectableRows {
		cb := v.views.Checkbox("select-row-"+key, p.Row, p.Selected)
		if cb != nil {
			cb.Style = th.Checkbox.Merge(cb.Style)
			row.Children = append(row.Children, cb)
		}
	}

	for _, col := range p.Columns {
		cellKey := "cell-" + col.ID + "-" + key
		if c := v.views.Cell(col, p.Row, cellKey); c != nil {
			row.Children = append(row.Children, c)
		}
	}

	if p.ExpandableRows && !p.ExpandableRowsHideExpander {
		exp := v.views.Expander(v.expanded, p.Row, v.ToggleExpanded, p.DefaultExpanderDisabled)
		if exp != nil {
			exp.Style = th.Expander.Merge(exp.Style)
			row.Children = append(row.Children, exp)
		}
	}

	tree := &RowTree{Row: row, Pointer: pointer}

	if p.ExpandableRows && v.expanded {
		var inherit *Style
		if p.InheritConditionalStyles {
			inherit = extended
		}
		if panel := v.views.Panel(p.Row, inherit, p.ExpandableRowsComponent); panel != nil {
			panel.Key = "expander--" + key
			panel.Style = th.Panel.Merge(panel.Style)
			tree.Panel = panel
		}
	}

	v.tree = tree
	return tree
}
