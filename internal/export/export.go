// Package export writes drawn heatmap cells as row-oriented files.
package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/couchcryptid/temperature-heatmap/internal/render"
)

// ErrUnknownFormat is returned for a format name no writer handles.
var ErrUnknownFormat = errors.New("unknown export format")

// Format names accepted by Write.
const (
	FormatJSONL   = "jsonl"
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

// Supports reports whether format names a cell export format.
func Supports(format string) bool {
	switch strings.ToLower(format) {
	case FormatJSONL, FormatCSV, FormatParquet:
		return true
	}
	return false
}

// Write encodes cells to w in the named format.
func Write(w io.Writer, format string, cells []render.Cell) error {
	switch strings.ToLower(format) {
	case FormatJSONL:
		return writeJSONL(w, cells)
	case FormatCSV:
		return writeCSV(w, cells)
	case FormatParquet:
		return writeParquet(w, cells)
	default:
		return fmt.Errorf("%w: %s (supported: jsonl, csv, parquet)", ErrUnknownFormat, format)
	}
}

func writeJSONL(w io.Writer, cells []render.Cell) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for i := range cells {
		if err := enc.Encode(cells[i]); err != nil {
			return fmt.Errorf("encode cell %d: %w", i, err)
		}
	}
	return bw.Flush()
}

var csvHeader = []string{"year", "month", "month_name", "variance", "temperature", "color"}

func writeCSV(w io.Writer, cells []render.Cell) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range cells {
		row := []string{
			strconv.Itoa(c.Year),
			strconv.Itoa(c.Month),
			c.MonthName,
			strconv.FormatFloat(c.Variance, 'f', -1, 64),
			strconv.FormatFloat(c.Temperature, 'f', -1, 64),
			c.Color,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeParquet(w io.Writer, cells []render.Cell) error {
	pw := parquet.NewGenericWriter[render.Cell](w)
	if _, err := pw.Write(cells); err != nil {
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}
