package renderer

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// decadeTicks marks a log10-scaled axis. Integer values get a labelled
// "10ⁿ" tick and the 2..9 multiples in between get unlabelled minor ticks.
// Ranges spanning less than one full decade fall back to the default ticker
// with the labels converted back to data units.
func decadeTicks(min, max float64) []plot.Tick {
	lo, hi := math.Ceil(min), math.Floor(max)
	if hi-lo < 1 {
		ticks := plot.DefaultTicks{}.Ticks(min, max)
		for i := range ticks {
			if ticks[i].Label != "" {
				ticks[i].Label = fmt.Sprintf("%.3g", math.Pow(10, ticks[i].Value))
			}
		}
		return ticks
	}

	// Thin out labels on wide ranges
	stride := int(math.Ceil((hi - lo + 1) / 8))

	var ticks []plot.Tick
	for e := lo - 1; e <= hi; e++ {
		if e >= lo && int(e-lo)%stride == 0 {
			ticks = append(ticks, plot.Tick{Value: e, Label: decadeLabel(e)})
		}
		if stride > 1 {
			continue
		}
		for k := 2; k < 10; k++ {
			v := e + math.Log10(float64(k))
			if v > min && v < max {
				ticks = append(ticks, plot.Tick{Value: v})
			}
		}
	}
	return ticks
}

func decadeLabel(e float64) string {
	return "10" + superscript(int(e))
}
