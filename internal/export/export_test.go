package export

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/temperature-heatmap/internal/render"
)

func sampleCells() []render.Cell {
	return []render.Cell{
		{Year: 1753, Month: 1, MonthName: "January", Variance: -6.2, Temperature: 2.46, Color: "#5e4fa2"},
		{Year: 2015, Month: 12, MonthName: "December", Variance: 1.2, Temperature: 9.86, Color: "#9e0142"},
	}
}

func TestWriteJSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "jsonl", sampleCells()))

	var got []render.Cell
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var c render.Cell
		require.NoError(t, json.Unmarshal(sc.Bytes(), &c))
		got = append(got, c)
	}
	if diff := cmp.Diff(sampleCells(), got); diff != "" {
		t.Errorf("jsonl cells mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "CSV", sampleCells()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{"1753", "1", "January", "-6.2", "2.46", "#5e4fa2"}, rows[1])
}

func TestWriteParquet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "parquet", sampleCells()))

	got, err := parquet.Read[render.Cell](bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	if diff := cmp.Diff(sampleCells(), got); diff != "" {
		t.Errorf("parquet cells mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "xlsx", sampleCells())
	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.False(t, Supports("xlsx"))
	assert.True(t, Supports("Parquet"))
}
