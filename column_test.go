package datatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertCommas(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "0"},
		{"100", "100"},
		{"1000", "1,000"},
		{"12345", "12,345"},
		{"1234567", "1,234,567"},
		{"-1234", "-1,234"},
		{"-1234567.89", "-1,234,567.89"},
		{"1000.50", "1,000.50"},
		{"999", "999"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, insertCommas(tt.input), "insertCommas(%q)", tt.input)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		val      any
		decimals int
		want     string
	}{
		{1234.5, 2, "1,234.50"},
		{1234, 0, "1,234"},
		{0.5, 1, "0.5"},
		{-9876.543, 2, "-9,876.54"},
		{int64(1000000), 0, "1,000,000"},
		{"2500", 0, "2,500"},
	}

	for _, tt := range tests {
		col := NewColumn("n", "N", Number(tt.decimals))
		assert.Equal(t, tt.want, col.Format(tt.val), "Number(%d)(%v)", tt.decimals, tt.val)
		assert.Equal(t, AlignRight, col.Align)
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		symbol   string
		decimals int
		val      any
		want     string
	}{
		{"$", 2, 1234.5, "$1,234.50"},
		{"€", 2, 99.9, "€99.90"},
		{"£", 0, 1000, "£1,000"},
	}

	for _, tt := range tests {
		col := NewColumn("price", "Price", Currency(tt.symbol, tt.decimals))
		assert.Equal(t, tt.want, col.Text(Row{"price": tt.val}))
	}
}

func TestPercent(t *testing.T) {
	col := NewColumn("p", "P", Percent(1))
	assert.Equal(t, "12.3%", col.Format(12.34))
}

func TestBytes(t *testing.T) {
	tests := []struct {
		val  any
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{-2048, "-2.0 KB"},
	}

	col := NewColumn("size", "Size", Bytes())
	for _, tt := range tests {
		assert.Equal(t, tt.want, col.Format(tt.val), "Bytes()(%v)", tt.val)
	}
}

func TestBool(t *testing.T) {
	col := NewColumn("ok", "OK", Bool("✓", "✗"))
	assert.Equal(t, "✓", col.Format(true))
	assert.Equal(t, "✗", col.Format(false))
	assert.Equal(t, "✗", col.Format("yes"))
	assert.Equal(t, AlignCenter, col.Align)
}

func TestStyleSign(t *testing.T) {
	pos, neg := Style{FG: Green}, Style{FG: Red}
	col := NewColumn("delta", "Δ", StyleSign(pos, neg))

	assert.Equal(t, pos, col.Style(Row{"delta": 5.0}))
	assert.Equal(t, neg, col.Style(Row{"delta": -3}))
	assert.Equal(t, pos, col.Style(Row{"delta": 0}))
}

func TestColumnText(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		assert.Equal(t, "", Column{ID: "x"}.Text(Row{}))
	})

	t.Run("Plain", func(t *testing.T) {
		assert.Equal(t, "30", Column{ID: "age"}.Text(Row{"age": 30}))
	})

	t.Run("Selector", func(t *testing.T) {
		col := NewColumn("full", "Full name", Selector(func(r Row) any {
			return r.Key("first") + " " + r.Key("last")
		}))
		assert.Equal(t, "Ann Lee", col.Text(Row{"first": "Ann", "last": "Lee"}))
	})
}

func TestColumnOptions(t *testing.T) {
	col := NewColumn("a", "A", Width(6), AlignTo(AlignCenter), IgnoreRowClick(), Button())
	assert.Equal(t, 6, col.Width)
	assert.Equal(t, AlignCenter, col.Align)
	assert.True(t, col.IgnoreRowClick)
	assert.True(t, col.Button)
}

func TestColumnByID(t *testing.T) {
	cols := []Column{{ID: "name"}, {ID: "age", Name: "Age"}}

	col, ok := ColumnByID(cols, "age")
	assert.True(t, ok)
	assert.Equal(t, "Age", col.Name)

	_, ok = ColumnByID(cols, "missing")
	assert.False(t, ok)
}

func TestRowKey(t *testing.T) {
	assert.Equal(t, "1", Row{"id": 1}.Key("id"))
	assert.Equal(t, "abc", Row{"id": "abc"}.Key("id"))
	assert.Equal(t, "<nil>", Row{}.Key("id"))
}
