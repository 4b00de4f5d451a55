package scale

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/layout"
)

func scenarioDataset() domain.Dataset {
	return domain.Dataset{
		BaseTemperature: 8.66,
		MonthlyVariance: []domain.Record{
			{Year: 1753, Month: 1, Variance: -6.2},
			{Year: 2015, Month: 12, Variance: 1.2},
		},
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestLinear_Apply(t *testing.T) {
	s := NewLinear(1753, 2015, 0, 1055)

	assert.Equal(t, 0.0, s.Apply(1753))
	assert.InDelta(t, 1055.0, s.Apply(2015), 1e-9)
	assert.InDelta(t, 527.5, s.Apply(1884), 1e-9)
}

func TestLinear_CollapsedDomain(t *testing.T) {
	s := NewLinear(2000, 2000, 0, 100)
	assert.Equal(t, 50.0, s.Apply(2000))
}

func TestLinear_Ticks(t *testing.T) {
	tests := []struct {
		name   string
		d0, d1 float64
		count  int
		want   []float64
	}{
		{"years", 1753, 2015, 20, []float64{1760, 1770, 1780, 1790, 1800, 1810, 1820, 1830, 1840, 1850, 1860, 1870, 1880, 1890, 1900, 1910, 1920, 1930, 1940, 1950, 1960, 1970, 1980, 1990, 2000, 2010}},
		{"months", 0, 11, 10, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
		{"fractional", 0, 1, 5, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{"reversed", 10, 0, 2, []float64{10, 5, 0}},
		{"single point", 3, 3, 5, []float64{3}},
		{"no ticks requested", 0, 10, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewLinear(tt.d0, tt.d1, 0, 1).Ticks(tt.count)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("ticks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvenCuts(t *testing.T) {
	got := EvenCuts(0, 11, 11)
	want := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("cuts mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, EvenCuts(0, 1, 1))
}

func TestThreshold(t *testing.T) {
	th, err := NewThreshold([]float64{1, 2}, []string{"a", "b", "c"})
	require.NoError(t, err)

	assert.Equal(t, "a", th.Color(0.5))
	assert.Equal(t, "b", th.Color(1), "a value equal to a cut point belongs to the upper bucket")
	assert.Equal(t, "b", th.Color(1.5))
	assert.Equal(t, "c", th.Color(2))
	assert.Equal(t, "c", th.Color(100))
	assert.Equal(t, "a", th.Color(-100))
	assert.Equal(t, "", th.Color(math.NaN()))
}

func TestThreshold_Invalid(t *testing.T) {
	_, err := NewThreshold([]float64{1, 2}, []string{"a", "b"})
	require.Error(t, err)

	_, err = NewThreshold([]float64{2, 1}, []string{"a", "b", "c"})
	require.Error(t, err)
}

func TestThreshold_InvertExtent(t *testing.T) {
	th, err := NewThreshold([]float64{1, 2}, []string{"a", "b", "c"})
	require.NoError(t, err)

	assert.Equal(t, Extent{Hi: 1, OpenLo: true}, th.InvertExtent(0))
	assert.Equal(t, Extent{Lo: 1, Hi: 2}, th.InvertExtent(1))
	assert.Equal(t, Extent{Lo: 2, OpenHi: true}, th.InvertExtent(2))
}

func TestBuild_Scenario(t *testing.T) {
	l := layout.Default()
	set, err := Build(scenarioDataset(), l)
	require.NoError(t, err)

	d0, d1 := set.X.Domain()
	assert.Equal(t, 1753.0, d0)
	assert.Equal(t, 2015.0, d1)
	assert.Equal(t, 0.0, set.X.Apply(1753))
	assert.InDelta(t, l.InnerWidth()+20, set.X.Apply(2015), 1e-9)

	_, yMax := set.Y.Range()
	assert.Equal(t, 280.0, yMax)

	assert.InDelta(t, 2.46, set.MinTemperature, 1e-9)
	assert.InDelta(t, 9.86, set.MaxTemperature, 1e-9)
	assert.Len(t, set.Color.Cuts(), 10)

	assert.Equal(t, l.Palette[0], set.Color.Color(set.MinTemperature))
	assert.Equal(t, l.Palette[10], set.Color.Color(set.MaxTemperature))

	lo, hi := set.Legend.Range()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 400.0, hi)
}

func TestBuild_EmptyDataset(t *testing.T) {
	_, err := Build(domain.Dataset{BaseTemperature: 8.66}, layout.Default())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEmptyDataset))
}

func TestBuild_ColorMonotonicInVariance(t *testing.T) {
	l := layout.Default()
	ds := domain.Dataset{BaseTemperature: 8.66}
	for i := 0; i <= 200; i++ {
		ds.MonthlyVariance = append(ds.MonthlyVariance, domain.Record{
			Year: 1753 + i, Month: i%12 + 1, Variance: -7 + float64(i)*0.07,
		})
	}
	set, err := Build(ds, l)
	require.NoError(t, err)

	sort.Slice(ds.MonthlyVariance, func(i, j int) bool {
		return ds.MonthlyVariance[i].Variance < ds.MonthlyVariance[j].Variance
	})
	prev := -1
	for _, r := range ds.MonthlyVariance {
		idx := set.Color.Index(r.Temperature(ds.BaseTemperature))
		require.GreaterOrEqual(t, idx, prev)
		require.Less(t, idx, len(l.Palette))
		prev = idx
	}
	assert.Equal(t, len(l.Palette)-1, prev)
}

func TestLegendBuckets_SubstitutesOpenBounds(t *testing.T) {
	set, err := Build(scenarioDataset(), layout.Default())
	require.NoError(t, err)

	buckets := set.LegendBuckets()
	require.Len(t, buckets, 11)

	assert.InDelta(t, set.MinTemperature, buckets[0].Lo, 1e-9)
	assert.InDelta(t, set.MaxTemperature, buckets[10].Hi, 1e-9)
	for i, b := range buckets {
		assert.False(t, b.OpenLo || b.OpenHi, "bucket %d still open", i)
		assert.Greater(t, b.Hi, b.Lo, "bucket %d has no width", i)
		if i > 0 {
			assert.InDelta(t, buckets[i-1].Hi, b.Lo, 1e-9)
		}
	}
}
