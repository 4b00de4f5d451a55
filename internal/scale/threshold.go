package scale

import (
	"fmt"
	"math"
	"sort"
)

// Threshold maps a continuous value onto one of a fixed ordered set of colors
// through sorted cut points.
type Threshold struct {
	cuts   []float64
	colors []string
}

// NewThreshold requires exactly one more color than cut points.
func NewThreshold(cuts []float64, colors []string) (Threshold, error) {
	if len(colors) != len(cuts)+1 {
		return Threshold{}, fmt.Errorf("threshold scale needs %d colors for %d cut points, got %d", len(cuts)+1, len(cuts), len(colors))
	}
	if !sort.Float64sAreSorted(cuts) {
		return Threshold{}, fmt.Errorf("threshold cut points must be ascending")
	}
	return Threshold{
		cuts:   append([]float64(nil), cuts...),
		colors: append([]string(nil), colors...),
	}, nil
}

// EvenCuts returns count-1 evenly spaced cut points strictly inside [lo, hi].
func EvenCuts(lo, hi float64, count int) []float64 {
	if count < 2 {
		return nil
	}
	step := (hi - lo) / float64(count)
	cuts := make([]float64, 0, count-1)
	for i := 1; i < count; i++ {
		cuts = append(cuts, lo+float64(i)*step)
	}
	return cuts
}

// Index returns the bucket for v: the position of the first cut point greater
// than v. NaN has no bucket and yields -1.
func (t Threshold) Index(v float64) int {
	if math.IsNaN(v) {
		return -1
	}
	return sort.Search(len(t.cuts), func(i int) bool { return t.cuts[i] > v })
}

// Color returns the color for v, or "" when v has no bucket.
func (t Threshold) Color(v float64) string {
	i := t.Index(v)
	if i < 0 {
		return ""
	}
	return t.colors[i]
}

// Cuts returns a copy of the cut points.
func (t Threshold) Cuts() []float64 { return append([]float64(nil), t.cuts...) }

// Colors returns a copy of the color sequence.
func (t Threshold) Colors() []string { return append([]string(nil), t.colors...) }

// Extent is the value interval covered by one color bucket.
type Extent struct {
	Lo, Hi         float64
	OpenLo, OpenHi bool // no cut point bounds this side
}

// InvertExtent returns the interval that maps to bucket i.
func (t Threshold) InvertExtent(i int) Extent {
	var e Extent
	if i <= 0 {
		e.OpenLo = true
	} else {
		e.Lo = t.cuts[i-1]
	}
	if i >= len(t.cuts) {
		e.OpenHi = true
	} else {
		e.Hi = t.cuts[i]
	}
	return e
}
