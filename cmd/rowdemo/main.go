// Command rowdemo shows data-table rows in the terminal.
//
//	rowdemo                       built-in sample data, interactive
//	rowdemo people.xlsx --sheet Q3 --selectable --expandable
//	rowdemo people.csv --print    paint once and exit
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/kungfusheep/datatable"
	"github.com/kungfusheep/datatable/internal/source"
)

type options struct {
	keyField         string
	sheet            string
	selectable       bool
	expandable       bool
	hideExpander     bool
	striped          bool
	dense            bool
	highlight        bool
	pointer          bool
	draggable        bool
	expandOnClick    bool
	expandOnDouble   bool
	defaultExpanded  bool
	expanderDisabled bool
	inheritStyles    bool
	theme            string
	print            bool
	debug            bool
}

func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.keyField, "key-field", "id", "field that identifies a row")
	fs.StringVar(&o.sheet, "sheet", "", "xlsx sheet name (default: first sheet)")
	fs.BoolVar(&o.selectable, "selectable", false, "show a selection checkbox per row")
	fs.BoolVar(&o.expandable, "expandable", true, "allow rows to expand a detail panel")
	fs.BoolVar(&o.hideExpander, "hide-expander", false, "hide the expander cell")
	fs.BoolVar(&o.striped, "striped", true, "stripe odd rows")
	fs.BoolVar(&o.dense, "dense", false, "use the dense layout")
	fs.BoolVar(&o.highlight, "highlight", true, "highlight the row under the pointer")
	fs.BoolVar(&o.pointer, "pointer", false, "show the pointer affordance on hover")
	fs.BoolVar(&o.draggable, "draggable", false, "report row drags")
	fs.BoolVar(&o.expandOnClick, "expand-on-click", true, "expand rows on click")
	fs.BoolVar(&o.expandOnDouble, "expand-on-double-click", false, "expand rows on double click")
	fs.BoolVar(&o.defaultExpanded, "default-expanded", false, "start with every row expanded")
	fs.BoolVar(&o.expanderDisabled, "expander-disabled", false, "disable expanding from the row body")
	fs.BoolVar(&o.inheritStyles, "inherit-styles", true, "panels inherit conditional row styles")
	fs.StringVar(&o.theme, "theme", "dark", "theme: dark, light or mono")
	fs.BoolVarP(&o.print, "print", "p", false, "paint once to stdout and exit")
	fs.BoolVar(&o.debug, "debug", false, "write debug logs to debug.log")
}

func main() {
	var o options
	root := &cobra.Command{
		Use:   "rowdemo [file.csv|file.json|file.xlsx]",
		Short: "Render data-table rows in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args)
		},
		SilenceUsage: true,
	}
	bindFlags(root.Flags(), &o)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(o options, args []string) error {
	if o.debug {
		f, err := tea.LogToFile("debug.log", "rowdemo")
		if err != nil {
			return errors.Wrap(err, "open debug log")
		}
		defer f.Close()
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	data := sampleData()
	if len(args) == 1 {
		d, err := source.Load(args[0], source.Options{Sheet: o.sheet})
		if err != nil {
			return errors.Wrapf(err, "load %s", args[0])
		}
		data = d
	}

	th, err := pickTheme(o.theme)
	if err != nil {
		return err
	}

	var status string
	rows := buildRows(o, data, th, &status)
	table := datatable.NewTable(rows, datatable.WithHeader(), datatable.WithTheme(th), datatable.WithLogger(slog.Default()))
	table.OnSelect = func(rv *datatable.RowView) {
		p := rv.Props()
		p.Selected = !p.Selected
		rv.SetProps(p)
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
	if o.print || !interactive {
		width := 100
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
		table.Update(tea.WindowSizeMsg{Width: width})
		if interactive {
			fmt.Println(table.Render())
		} else {
			fmt.Println(table.String())
		}
		return nil
	}

	m := &model{table: table, status: &status}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return errors.Wrap(err, "run program")
	}
	return nil
}

func pickTheme(name string) (*datatable.Theme, error) {
	switch strings.ToLower(name) {
	case "dark", "":
		return &datatable.ThemeDark, nil
	case "light":
		return &datatable.ThemeLight, nil
	case "mono", "monochrome":
		return &datatable.ThemeMonochrome, nil
	}
	return nil, errors.Errorf("unknown theme %q", name)
}

func buildRows(o options, data *source.Data, th *datatable.Theme, status *string) []*datatable.RowView {
	rules := []datatable.ConditionalStyle{
		{When: datatable.If("status").Eq("failed"), Style: datatable.Style{FG: datatable.BrightRed}},
		{When: datatable.If("age").Gt(65), Style: datatable.Style{FG: datatable.Yellow}},
	}

	rows := make([]*datatable.RowView, len(data.Rows))
	for i, r := range data.Rows {
		rows[i] = datatable.NewRowView(datatable.RowProps{
			ID:       i,
			KeyField: o.keyField,
			Row:      r,
			Columns:  data.Columns,
			RowIndex: i,

			OnRowClicked: func(row datatable.Row, e datatable.ClickEvent) {
				*status = fmt.Sprintf("clicked row %s", row.Key(o.keyField))
			},
			OnRowDoubleClicked: func(row datatable.Row, e datatable.ClickEvent) {
				*status = fmt.Sprintf("double clicked row %s", row.Key(o.keyField))
			},
			OnDrag: func(row datatable.Row, e datatable.DragEvent) {
				*status = fmt.Sprintf("dragging row %s at %d,%d", row.Key(o.keyField), e.Point.X, e.Point.Y)
			},
			OnDragEnd: func(row datatable.Row, e datatable.DragEvent, info datatable.DragInfo) {
				*status = fmt.Sprintf("dropped row %s, moved %d,%d", row.Key(o.keyField), info.Offset.X, info.Offset.Y)
			},
			OnRowExpandToggled: func(expanded bool, row datatable.Row) {
				slog.Debug("expand toggled", "row", row.Key(o.keyField), "expanded", expanded)
			},

			SelectableRows:             o.selectable,
			ExpandableRows:             o.expandable,
			Striped:                    o.striped,
			HighlightOnHover:           o.highlight,
			PointerOnHover:             o.pointer,
			Dense:                      o.dense,
			Draggable:                  o.draggable,
			ExpandableRowsHideExpander: o.hideExpander,
			ExpandOnRowClicked:         o.expandOnClick,
			ExpandOnRowDoubleClicked:   o.expandOnDouble,
			InheritConditionalStyles:   o.inheritStyles,
			SelectableRowsHighlight:    true,
			DefaultExpanded:            o.defaultExpanded,
			DefaultExpanderDisabled:    o.expanderDisabled,
			ConditionalRowStyles:       rules,
			ExpandableRowsComponent:    detail(data.Columns),
			Theme:                      th,
		})
	}
	return rows
}

// detail renders every field of the row as "name: value" pairs.
func detail(cols []datatable.Column) func(datatable.Row) string {
	return func(r datatable.Row) string {
		parts := make([]string, 0, len(cols))
		for _, c := range cols {
			parts = append(parts, c.Name+": "+c.Text(r))
		}
		return strings.Join(parts, "  ")
	}
}

func sampleData() *source.Data {
	return &source.Data{
		Columns: []datatable.Column{
			datatable.NewColumn("id", "ID", datatable.Width(4), datatable.AlignTo(datatable.AlignRight)),
			datatable.NewColumn("name", "Name"),
			datatable.NewColumn("age", "Age", datatable.Number(0), datatable.Width(5)),
			datatable.NewColumn("status", "Status", datatable.Width(8)),
			datatable.NewColumn("balance", "Balance", datatable.Currency("$", 2), datatable.Width(12)),
		},
		Rows: []datatable.Row{
			{"id": 1, "name": "Ann Lee", "age": 30, "status": "ok", "balance": 1520.5},
			{"id": 2, "name": "Bob Stone", "age": 71, "status": "ok", "balance": 88.0},
			{"id": 3, "name": "Cara Diaz", "age": 45, "status": "failed", "balance": -310.25},
			{"id": 4, "name": "Dev Patel", "age": 28, "status": "ok", "balance": 1234567.0},
		},
	}
}

// model wraps the table with a status line.
type model struct {
	table  *datatable.Table
	status *string
}

func (m *model) Init() tea.Cmd { return m.table.Init() }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.table.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	return m.table.View() + "\n" + *m.status
}
