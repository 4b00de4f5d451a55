package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrEmptyDataset is returned when a dataset carries no monthly records.
var ErrEmptyDataset = errors.New("dataset has no monthly variance records")

// Record is one (year, month, variance) triple.
type Record struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`    // 1-based
	Variance float64 `json:"variance"` // degrees relative to the base temperature
}

// Temperature returns the absolute temperature of the record.
func (r Record) Temperature(base float64) float64 {
	return base + r.Variance
}

// MonthName returns the calendar name of the record's month.
func (r Record) MonthName() string {
	return MonthName(r.Month)
}

// Dataset is the decoded global temperature document.
type Dataset struct {
	BaseTemperature float64  `json:"baseTemperature"`
	MonthlyVariance []Record `json:"monthlyVariance"`
}

// Decode reads a dataset from JSON and rejects documents without records.
func Decode(r io.Reader) (Dataset, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// Validate reports whether the dataset can be drawn.
func (d Dataset) Validate() error {
	if len(d.MonthlyVariance) == 0 {
		return ErrEmptyDataset
	}
	return nil
}

// YearExtent returns the smallest and largest year in the dataset.
func (d Dataset) YearExtent() (minYear, maxYear int) {
	for i, r := range d.MonthlyVariance {
		if i == 0 || r.Year < minYear {
			minYear = r.Year
		}
		if i == 0 || r.Year > maxYear {
			maxYear = r.Year
		}
	}
	return minYear, maxYear
}

// TemperatureExtent returns base + min(variance) and base + max(variance).
func (d Dataset) TemperatureExtent() (minTemp, maxTemp float64) {
	var lo, hi float64
	for i, r := range d.MonthlyVariance {
		if i == 0 || r.Variance < lo {
			lo = r.Variance
		}
		if i == 0 || r.Variance > hi {
			hi = r.Variance
		}
	}
	return d.BaseTemperature + lo, d.BaseTemperature + hi
}

// MonthName returns the full calendar name for a 1-based month. Out-of-range
// values wrap around the year.
func MonthName(month int) string {
	idx := ((month-1)%12 + 12) % 12
	return time.Month(idx + 1).String()
}
