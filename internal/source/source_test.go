package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func columnIDs(d *Data) []string {
	ids := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		ids[i] = c.ID
	}
	return ids
}

func TestReadCSV(t *testing.T) {
	in := "id, name,age,active\n1,Ann,30,true\n2,Bob,41.5,false\n3,Cy\n"
	d, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "age", "active"}, columnIDs(d))
	assert.Equal(t, "Name", d.Columns[1].Name)
	require.Len(t, d.Rows, 3)
	assert.Equal(t, int64(1), d.Rows[0]["id"])
	assert.Equal(t, "Ann", d.Rows[0]["name"])
	assert.Equal(t, true, d.Rows[0]["active"])
	assert.Equal(t, 41.5, d.Rows[1]["age"])
	assert.NotContains(t, d.Rows[2], "age")
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.EqualError(t, err, "no header row")

	_, err = ReadCSV(strings.NewReader("a,\"b\n1,2"))
	assert.Error(t, err)
}

func TestReadJSON(t *testing.T) {
	in := `[{"name":"Ann","id":1,"score":9.5},{"id":2,"name":"Bob","extra":null}]`
	d, err := ReadJSON(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "score", "extra"}, columnIDs(d))
	require.Len(t, d.Rows, 2)
	assert.Equal(t, int64(1), d.Rows[0]["id"])
	assert.Equal(t, 9.5, d.Rows[0]["score"])
	assert.Nil(t, d.Rows[1]["extra"])

	_, err = ReadJSON(strings.NewReader(`{"id":1}`))
	assert.ErrorContains(t, err, "decode json")
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"42", int64(42)},
		{"-3", int64(-3)},
		{"1.25", 1.25},
		{"true", true},
		{"FALSE", false},
		{"t", "t"},
		{"", ""},
		{"hello", "hello"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseCell(tt.in), "parseCell(%q)", tt.in)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("CSV", func(t *testing.T) {
		path := filepath.Join(dir, "rows.CSV")
		require.NoError(t, os.WriteFile(path, []byte("id,name\n7,Dee\n"), 0o644))
		d, err := Load(path, Options{})
		require.NoError(t, err)
		require.Len(t, d.Rows, 1)
		assert.Equal(t, "Dee", d.Rows[0]["name"])
	})

	t.Run("JSON", func(t *testing.T) {
		path := filepath.Join(dir, "rows.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"id":"x"}]`), 0o644))
		d, err := Load(path, Options{})
		require.NoError(t, err)
		assert.Equal(t, "x", d.Rows[0]["id"])
	})

	t.Run("XLSX", func(t *testing.T) {
		path := filepath.Join(dir, "rows.xlsx")
		f := excelize.NewFile()
		_, err := f.NewSheet("People")
		require.NoError(t, err)
		for cell, v := range map[string]any{
			"A1": "id", "B1": "name", "C1": "age",
			"A2": 1, "B2": "Ann", "C2": 30,
			"A3": 2, "B3": "Bob", "C3": 41,
		} {
			require.NoError(t, f.SetCellValue("People", cell, v))
		}
		require.NoError(t, f.SetCellValue("Sheet1", "A1", "other"))
		require.NoError(t, f.SaveAs(path))
		require.NoError(t, f.Close())

		d, err := Load(path, Options{Sheet: "People"})
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name", "age"}, columnIDs(d))
		require.Len(t, d.Rows, 2)
		assert.Equal(t, "Bob", d.Rows[1]["name"])
		assert.Equal(t, int64(41), d.Rows[1]["age"])

		d, err = Load(path, Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"other"}, columnIDs(d))
		assert.Empty(t, d.Rows)

		_, err = Load(path, Options{Sheet: "Missing"})
		assert.Error(t, err)
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "rows.txt"), Options{})
		assert.True(t, errors.Is(err, ErrUnsupported))
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.csv"), Options{})
		assert.True(t, os.IsNotExist(errors.Cause(err)))
	})
}
