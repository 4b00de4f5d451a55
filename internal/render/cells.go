package render

import (
	"strconv"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/scale"
)

// Cell is one drawn dataset record with its derived values.
type Cell struct {
	Year        int     `json:"year" parquet:"year"`
	Month       int     `json:"month" parquet:"month"`
	MonthName   string  `json:"month_name" parquet:"month_name"`
	Variance    float64 `json:"variance" parquet:"variance"`
	Temperature float64 `json:"temperature" parquet:"temperature"`
	Color       string  `json:"color" parquet:"color"`
}

// Cells derives one cell per record, in dataset order.
func Cells(ds domain.Dataset, set scale.Set) []Cell {
	out := make([]Cell, len(ds.MonthlyVariance))
	for i, r := range ds.MonthlyVariance {
		temp := r.Temperature(ds.BaseTemperature)
		out[i] = Cell{
			Year:        r.Year,
			Month:       r.Month,
			MonthName:   r.MonthName(),
			Variance:    r.Variance,
			Temperature: temp,
			Color:       set.Color.Color(temp),
		}
	}
	return out
}

// TooltipText is the markup shown while hovering a cell.
func TooltipText(c Cell) string {
	return strconv.Itoa(c.Year) + " - " + c.MonthName + "<br/>" + fixed1(c.Temperature) + "<br/>" + num(c.Variance)
}
