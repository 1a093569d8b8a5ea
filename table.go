package datatable

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Table is a minimal bubbletea host for row views. It stacks rows top to
// bottom, routes pointer gestures to the row under the pointer and offers
// keyboard navigation. It does not scroll, sort or track selection; the
// OnSelect hook lets the caller own selection.
type Table struct {
	rows   []*RowView
	width  int
	theme  *Theme
	keys   KeyMap
	logger *slog.Logger
	header bool

	// OnSelect is called when a row's checkbox is clicked or the select key
	// is pressed on the active row.
	OnSelect func(rv *RowView)

	tracker   *PointerTracker
	buf       *Buffer
	lineRow   []int  // row index for each painted line, -1 for the header
	linePanel []bool // painted line belongs to an expanded panel
	active    int    // row under the pointer or keyboard cursor, -1 for none
	dragRow   int
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithLogger routes debug traces of dispatched gestures to l.
func WithLogger(l *slog.Logger) TableOption {
	return func(t *Table) { t.logger = l }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) TableOption {
	return func(t *Table) { t.keys = k }
}

// WithWidth sets the initial width used before the first WindowSizeMsg.
func WithWidth(w int) TableOption {
	return func(t *Table) { t.width = w }
}

// WithHeader renders a header line with the column names.
func WithHeader() TableOption {
	return func(t *Table) { t.header = true }
}

// WithTheme sets the theme used for the header and row gaps. Rows keep the
// theme from their own props.
func WithTheme(th *Theme) TableOption {
	return func(t *Table) { t.theme = th }
}

// WithTracker replaces the pointer tracker, mainly to control timing.
func WithTracker(pt *PointerTracker) TableOption {
	return func(t *Table) { t.tracker = pt }
}

// NewTable creates a table hosting rows.
func NewTable(rows []*RowView, opts ...TableOption) *Table {
	t := &Table{
		rows:    rows,
		width:   80,
		keys:    DefaultKeyMap(),
		logger:  slog.New(slog.DiscardHandler),
		tracker: NewPointerTracker(),
		active:  -1,
		dragRow: -1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Rows returns the hosted row views.
func (t *Table) Rows() []*RowView {
	return t.rows
}

// Active returns the index of the active row, or -1.
func (t *Table) Active() int {
	return t.active
}

func (t *Table) themeOrDefault() *Theme {
	if t.theme != nil {
		return t.theme
	}
	return &DefaultTheme
}

// Init implements tea.Model.
func (t *Table) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (t *Table) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.width = msg.Width
	case tea.KeyMsg:
		return t, t.handleKey(msg)
	case tea.MouseMsg:
		t.handleMouse(msg)
	}
	return t, nil
}

func (t *Table) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, t.keys.Quit):
		return tea.Quit
	case key.Matches(msg, t.keys.Up):
		if t.active > 0 {
			t.setActive(t.active - 1)
		} else if t.active < 0 && len(t.rows) > 0 {
			t.setActive(0)
		}
	case key.Matches(msg, t.keys.Down):
		if t.active < len(t.rows)-1 {
			t.setActive(t.active + 1)
		}
	case key.Matches(msg, t.keys.Toggle):
		if rv := t.row(t.active); rv != nil {
			if exp := rv.Render().Row.Find(isExpander); exp != nil && exp.Activate != nil {
				t.logger.Debug("activate expander", "row", t.active)
				exp.Activate()
			}
		}
	case key.Matches(msg, t.keys.Select):
		if rv := t.row(t.active); rv != nil && rv.Props().SelectableRows && t.OnSelect != nil {
			t.logger.Debug("select", "row", t.active)
			t.OnSelect(rv)
		}
	}
	return nil
}

func isExpander(e *Element) bool { return e.Kind == KindExpander }

func (t *Table) row(i int) *RowView {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return t.rows[i]
}

func (t *Table) setActive(i int) {
	if i == t.active {
		return
	}
	if rv := t.row(t.active); rv != nil {
		rv.SetHovered(false)
	}
	t.active = i
	if rv := t.row(i); rv != nil {
		rv.SetHovered(true)
	}
}

// rowAt returns the index of the row painted on line y, or -1.
func (t *Table) rowAt(y int) int {
	if y < 0 || y >= len(t.lineRow) {
		return -1
	}
	return t.lineRow[y]
}

// bodyAt returns the row whose body, not its expanded panel, is painted on
// line y.
func (t *Table) bodyAt(y int) *RowView {
	if y < 0 || y >= len(t.linePanel) || t.linePanel[y] {
		return nil
	}
	return t.row(t.rowAt(y))
}

func (t *Table) handleMouse(msg tea.MouseMsg) {
	// layout may have changed since the last frame, e.g. a row expanded
	if t.buf == nil || msg.Action == tea.MouseActionPress {
		t.paint()
	}
	for _, g := range t.tracker.Update(msg, t.buf) {
		t.dispatch(g)
	}
}

func (t *Table) dispatch(g Gesture) {
	switch g.Kind {
	case GestureHover:
		t.setActive(t.rowAt(g.Point.Y))

	case GestureClick:
		rv := t.bodyAt(g.Point.Y)
		if rv == nil || g.Target == nil {
			return
		}
		switch g.Target.Kind {
		case KindExpander:
			if g.Target.Activate != nil {
				t.logger.Debug("activate expander", "row", t.rowAt(g.Point.Y))
				g.Target.Activate()
			}
		case KindCheckbox:
			if t.OnSelect != nil {
				t.logger.Debug("select", "row", t.rowAt(g.Point.Y))
				t.OnSelect(rv)
			}
		}
		if g.Target.PropagatesClicks() {
			t.logger.Debug("row click", "row", t.rowAt(g.Point.Y), "x", g.Point.X)
		}
		rv.HandleClick(g.ClickEvent())

	case GestureDoubleClick:
		if rv := t.bodyAt(g.Point.Y); rv != nil && g.Target != nil {
			if g.Target.PropagatesClicks() {
				t.logger.Debug("row double click", "row", t.rowAt(g.Point.Y), "x", g.Point.X)
			}
			rv.HandleDoubleClick(g.ClickEvent())
		}

	case GestureDrag:
		if t.dragRow < 0 {
			t.dragRow = t.rowAt(g.Start.Y)
		}
		if rv := t.row(t.dragRow); rv != nil {
			rv.HandleDrag(g.DragEvent())
		}

	case GestureDragEnd:
		if t.dragRow < 0 {
			t.dragRow = t.rowAt(g.Start.Y)
		}
		if rv := t.row(t.dragRow); rv != nil {
			t.logger.Debug("drag end", "row", t.dragRow, "dx", g.Info.Offset.X, "dy", g.Info.Offset.Y)
			rv.HandleDragEnd(g.DragEvent(), g.Info)
		}
		t.dragRow = -1
	}
}

// paint lays every row out into the buffer and records which row owns each
// line and which lines are expanded panels.
func (t *Table) paint() {
	th := t.themeOrDefault()
	width := max(t.width, 1)

	trees := make([]*RowTree, len(t.rows))
	heights := make([]int, len(t.rows))
	total := 0
	if t.header {
		total++
	}
	for i, rv := range t.rows {
		trees[i] = rv.Render()
		heights[i] = MeasureRow(trees[i], width, rowGap(rv))
		total += heights[i]
	}

	if t.buf == nil {
		t.buf = NewBuffer(width, total)
	} else {
		t.buf.Resize(width, total)
		t.buf.Clear()
	}
	t.lineRow = t.lineRow[:0]
	t.linePanel = t.linePanel[:0]
	y := 0
	if t.header {
		t.paintHeader(width, th)
		t.lineRow = append(t.lineRow, -1)
		t.linePanel = append(t.linePanel, false)
		y++
	}
	for i, rv := range t.rows {
		h := t.buf.PaintRow(trees[i], 0, y, width, rowGap(rv))
		body := measureInline(trees[i].Row, width, rowGap(rv))
		for line := range h {
			t.lineRow = append(t.lineRow, i)
			t.linePanel = append(t.linePanel, line >= body)
		}
		y += h
	}
}

func rowGap(rv *RowView) int {
	p := rv.Props()
	th := p.Theme
	if th == nil {
		th = &DefaultTheme
	}
	return th.gap(p.Dense)
}

// paintHeader lays the header out with the same slots as the first row so
// names line up with their cells.
func (t *Table) paintHeader(width int, th *Theme) {
	rv := t.row(0)
	if rv == nil {
		return
	}
	hdr := &Element{Kind: KindRow, Role: "rowheader", Style: th.Row.Bold()}
	cols := rv.Props().Columns
	next := 0
	for _, c := range rv.Render().Row.Children {
		label := ""
		if c.Kind == KindCell && next < len(cols) {
			label = cols[next].Name
			next++
		}
		hdr.Children = append(hdr.Children, &Element{Kind: KindText, Text: label, Width: c.Width, Align: c.Align})
	}
	t.buf.paintInline(hdr, 0, 0, width, 1, rowGap(rv), Style{})
}

// View implements tea.Model.
func (t *Table) View() string {
	t.paint()
	help := make([]string, 0, 5)
	for _, b := range t.keys.ShortHelp() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	footer := lipgloss.NewStyle().Faint(true).Render(strings.Join(help, " • "))
	return lipgloss.JoinVertical(lipgloss.Left, t.buf.Render(), "", footer)
}

// String paints the table and returns it as plain text.
func (t *Table) String() string {
	t.paint()
	return t.buf.String()
}

// Render paints the table and returns it with ANSI styling.
func (t *Table) Render() string {
	t.paint()
	return t.buf.Render()
}
