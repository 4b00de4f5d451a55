package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Geometry(t *testing.T) {
	l := Default()

	assert.Equal(t, 1035.0, l.InnerWidth())
	assert.Equal(t, 380.0, l.InnerHeight())
	assert.Equal(t, 280.0, l.PlotHeight())
	assert.InDelta(t, 304.0/12, l.CellHeight(), 1e-9)
	assert.Len(t, l.Palette, 11)
	require.NoError(t, l.Validate())
}

func TestDefault_PaletteIsCopied(t *testing.T) {
	l := Default()
	l.Palette[0] = "#000000"
	assert.Equal(t, "#313695", Palette[0])
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	l, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), l)
}

func TestLoad_OverridesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 1400\ny_axis_offset: -300\nmargin:\n  top: 120\n"), 0o600))

	l, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1400.0, l.Width)
	assert.Equal(t, -300.0, l.YAxisOffset)
	assert.Equal(t, 120.0, l.Margin.Top)
	assert.Equal(t, 15.0, l.Margin.Left, "unset fields keep their defaults")
	assert.Equal(t, 50.0, l.CellYOffset)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read layout file")
}

func TestLoad_InvalidLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("palette: [\"#fff\"]\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palette")
}

func TestValidate_RejectsDegenerateGeometry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Layout)
		want   string
	}{
		{"plot height zero", func(l *Layout) { l.Margin.Top = 240 }, "month scale"},
		{"plot height negative", func(l *Layout) { l.Margin.Top = 300 }, "month scale"},
		{"row pad swallows plot", func(l *Layout) { l.CellHeightPad = -280 }, "month rows"},
		{"zero cell width", func(l *Layout) { l.CellWidth = 0 }, "cell and swatch"},
		{"negative swatch width", func(l *Layout) { l.SwatchWidth = -37 }, "cell and swatch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Default()
			tt.mutate(&l)
			err := l.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_RejectsCollapsedMonthScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("margin:\n  top: 250\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "month scale")
}
