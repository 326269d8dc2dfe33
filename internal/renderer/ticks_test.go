package renderer

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot"
)

func labelled(ticks []plot.Tick) []string {
	var labels []string
	for _, tk := range ticks {
		if tk.Label != "" {
			labels = append(labels, tk.Label)
		}
	}
	return labels
}

func TestDecadeTicks_Decades(t *testing.T) {
	ticks := decadeTicks(0, 3)
	assert.Equal(t, []string{"10⁰", "10¹", "10²", "10³"}, labelled(ticks))

	// 8 minor ticks between each pair of decades
	assert.Len(t, ticks, 4+3*8)
	for _, tk := range ticks {
		assert.GreaterOrEqual(t, tk.Value, 0.0)
		assert.LessOrEqual(t, tk.Value, 3.0)
	}
}

func TestDecadeTicks_NegativeExponents(t *testing.T) {
	labels := labelled(decadeTicks(-2.5, -0.2))
	assert.Equal(t, []string{"10⁻²", "10⁻¹"}, labels)
}

func TestDecadeTicks_WideRangeThinned(t *testing.T) {
	ticks := decadeTicks(0, 30)
	labels := labelled(ticks)
	assert.LessOrEqual(t, len(labels), 8)
	assert.Equal(t, "10⁰", labels[0])
	assert.Len(t, ticks, len(labels), "no minor ticks when thinned")
}

func TestDecadeTicks_SubDecade(t *testing.T) {
	// log10(2) .. log10(8): less than one decade
	ticks := decadeTicks(0.30103, 0.90309)
	labels := labelled(ticks)
	assert.NotEmpty(t, labels)
	for _, l := range labels {
		_, err := strconv.ParseFloat(l, 64)
		assert.NoError(t, err, "label %q is not in data units", l)
	}
}

func TestDecadeLabel(t *testing.T) {
	testCases := []struct {
		exp  float64
		want string
	}{
		{0, "10⁰"},
		{3, "10³"},
		{12, "10¹²"},
		{-7, "10⁻⁷"},
		{-30, "10⁻³⁰"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, decadeLabel(tc.exp))
	}
}

func TestPlainLabel(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"$k_x$", "kₓ"},
		{"$k_y$", "k_y"},
		{"xPos", "xPos"},
		{"$10^{-2}$", "10⁻²"},
		{"$a_{12}$", "a₁₂"},
		{"$E^{ab}$", "E^ab"},
		{"trailing_", "trailing_"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got := plainLabel(tc.in)
			assert.Equal(t, tc.want, got)
			assert.NotContains(t, got, "$")
		})
	}
}
