// Command genmock writes a synthetic global-temperature dataset in the same
// shape as the published one, then runs it through the domain and scale
// packages and prints the figures tests assert against.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -from 1753 -to 2015 -base 8.66 -seed 42 \
//	  -out data/mock/global-temperature.json
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/layout"
	"github.com/couchcryptid/temperature-heatmap/internal/scale"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	from := flag.Int("from", 1753, "first year")
	to := flag.Int("to", 2015, "last year")
	base := flag.Float64("base", 8.66, "base temperature")
	seed := flag.Uint64("seed", 42, "random seed")
	out := flag.String("out", "", "output path for the dataset fixture")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if *to < *from {
		return fmt.Errorf("-to %d is before -from %d", *to, *from)
	}

	ds := generate(*from, *to, *base, rand.New(rand.NewPCG(*seed, *seed)))

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	// Round-trip through the real decoder so the fixture is known to load.
	decoded, err := domain.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode generated dataset: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0o600); err != nil {
		return err
	}
	log.Printf("wrote dataset fixture: %s (%d records)", *out, len(decoded.MonthlyVariance))

	return printStats(decoded)
}

// generate produces a warming trend with a seasonal swing and noise.
func generate(from, to int, base float64, rng *rand.Rand) domain.Dataset {
	ds := domain.Dataset{BaseTemperature: base}
	span := float64(to - from + 1)
	for year := from; year <= to; year++ {
		trend := 1.5 * float64(year-from) / span
		for month := 1; month <= 12; month++ {
			season := 0.6 * math.Cos(2*math.Pi*float64(month-7)/12)
			noise := rng.NormFloat64() * 0.9
			v := math.Round((trend-0.9+season+noise)*1000) / 1000
			ds.MonthlyVariance = append(ds.MonthlyVariance, domain.Record{Year: year, Month: month, Variance: v})
		}
	}
	return ds
}

func printStats(ds domain.Dataset) error {
	set, err := scale.Build(ds, layout.Default())
	if err != nil {
		return err
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Records: %d\n", len(ds.MonthlyVariance))
	fmt.Printf("Years: %d - %d\n", set.MinYear, set.MaxYear)
	fmt.Printf("Temperature: %.3f .. %.3f\n", set.MinTemperature, set.MaxTemperature)

	counts := make(map[string]int, len(set.Color.Colors()))
	for _, r := range ds.MonthlyVariance {
		counts[set.Color.Color(r.Temperature(ds.BaseTemperature))]++
	}
	fmt.Println("Cells per legend bucket:")
	for i, b := range set.LegendBuckets() {
		color := set.Color.Colors()[i]
		fmt.Printf("  %s [%.2f, %.2f): %d\n", color, b.Lo, b.Hi, counts[color])
	}
	return nil
}
