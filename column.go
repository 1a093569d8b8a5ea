package datatable

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Column describes how one field of a Row is displayed. Row views pass it
// through to the CellView untouched.
type Column struct {
	ID       string
	Name     string
	Selector func(Row) any // defaults to row[ID]
	Format   func(any) string
	Style    func(Row) Style // per-cell conditional style
	Width    int             // fixed width, 0 = share remaining space
	Align    Align
	Wrap     bool

	// IgnoreRowClick keeps clicks on this cell from reaching the row.
	IgnoreRowClick bool
	// Button marks cells whose content is its own control; implies IgnoreRowClick.
	Button bool
}

// ColumnOption configures a Column.
type ColumnOption func(*Column)

// NewColumn creates a column for the given field id.
//
//	NewColumn("price", "Price", Currency("$", 2))
//	NewColumn("active", "Active", Bool("yes", "no"), IgnoreRowClick())
func NewColumn(id, name string, opts ...ColumnOption) Column {
	c := Column{ID: id, Name: name}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Value returns the column's raw value for row.
func (c Column) Value(row Row) any {
	if c.Selector != nil {
		return c.Selector(row)
	}
	return row[c.ID]
}

// Text returns the formatted display text for row.
func (c Column) Text(row Row) string {
	v := c.Value(row)
	if c.Format != nil {
		return c.Format(v)
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// ColumnByID returns the column with the given id.
func ColumnByID(cols []Column, id string) (Column, bool) {
	return lo.Find(cols, func(c Column) bool { return c.ID == id })
}

// ----------------------------------------------------------------------------
// option presets
// ----------------------------------------------------------------------------

// Width fixes the column width in terminal cells.
func Width(w int) ColumnOption {
	return func(c *Column) { c.Width = w }
}

// AlignTo sets the column alignment.
func AlignTo(a Align) ColumnOption {
	return func(c *Column) { c.Align = a }
}

// Selector reads the cell value with fn instead of row[id].
func Selector(fn func(Row) any) ColumnOption {
	return func(c *Column) { c.Selector = fn }
}

// IgnoreRowClick keeps clicks on the column's cells from reaching the row.
func IgnoreRowClick() ColumnOption {
	return func(c *Column) { c.IgnoreRowClick = true }
}

// Button marks the column as holding its own control.
func Button() ColumnOption {
	return func(c *Column) { c.Button = true }
}

// Number formats numeric values with comma separators.
// decimals controls decimal places for floats (ignored for integers).
func Number(decimals int) ColumnOption {
	return func(c *Column) {
		c.Align = AlignRight
		c.Format = func(v any) string {
			return formatNumber(v, decimals)
		}
	}
}

// Currency formats numeric values with a symbol prefix and comma separators.
func Currency(symbol string, decimals int) ColumnOption {
	return func(c *Column) {
		c.Align = AlignRight
		c.Format = func(v any) string {
			return symbol + formatNumber(v, decimals)
		}
	}
}

// Percent formats numeric values as percentages.
func Percent(decimals int) ColumnOption {
	return func(c *Column) {
		c.Align = AlignRight
		c.Format = func(v any) string {
			return strconv.FormatFloat(toFloat64(v), 'f', decimals, 64) + "%"
		}
	}
}

// Bytes formats numeric values as human-readable byte sizes.
func Bytes() ColumnOption {
	return func(c *Column) {
		c.Align = AlignRight
		c.Format = func(v any) string {
			return formatBytes(toFloat64(v))
		}
	}
}

// Bool formats boolean values with custom labels.
func Bool(yes, no string) ColumnOption {
	return func(c *Column) {
		c.Align = AlignCenter
		c.Format = func(v any) string {
			if b, ok := v.(bool); ok && b {
				return yes
			}
			return no
		}
	}
}

// StyleSign colors cells based on the numeric sign of the column value.
func StyleSign(positive, negative Style) ColumnOption {
	return func(c *Column) {
		c.Style = func(r Row) Style {
			if toFloat64(c.Value(r)) >= 0 {
				return positive
			}
			return negative
		}
	}
}

// ----------------------------------------------------------------------------
// internal helpers
// ----------------------------------------------------------------------------

// toFloat64 converts common numeric types to float64. Numeric strings parse.
func toFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f
	default:
		return 0
	}
}

// formatNumber formats a numeric value with comma separators.
func formatNumber(v any, decimals int) string {
	s := strconv.FormatFloat(toFloat64(v), 'f', decimals, 64)
	return insertCommas(s)
}

// insertCommas adds thousand separators to a numeric string.
func insertCommas(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	integer, decimal, hasDecimal := strings.Cut(s, ".")

	if n := len(integer); n > 3 {
		var b strings.Builder
		b.Grow(n + n/3)
		start := n % 3
		if start == 0 {
			start = 3
		}
		b.WriteString(integer[:start])
		for i := start; i < n; i += 3 {
			b.WriteByte(',')
			b.WriteString(integer[i : i+3])
		}
		integer = b.String()
	}

	result := integer
	if hasDecimal {
		result += "." + decimal
	}
	if neg {
		return "-" + result
	}
	return result
}

// formatBytes converts a byte count to a human-readable string.
func formatBytes(b float64) string {
	if b < 0 {
		return "-" + formatBytes(-b)
	}
	if b < 1 {
		return "0 B"
	}

	units := []string{"B", "KB", "MB", "GB", "TB", "PB"}
	exp := int(math.Log(b) / math.Log(1024))
	if exp >= len(units) {
		exp = len(units) - 1
	}

	val := b / math.Pow(1024, float64(exp))
	if exp == 0 {
		return fmt.Sprintf("%.0f %s", val, units[exp])
	}
	return fmt.Sprintf("%.1f %s", val, units[exp])
}
