package ui

import (
	"fmt"
	"strings"
)

var sparkLevels = []rune(" ▁▂▃▄▅▆▇█")

const (
	gaugeFill  = "█"
	gaugeEmpty = "░"
)

// sparkline renders the newest `width` samples as one row of block
// characters. Values are scaled against max; pass max <= 0 to scale
// against the window's own peak (for unbounded series like net rates).
func sparkline(values []float64, width int, max float64) string {
	if width < 1 {
		width = 1
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	if max <= 0 {
		for _, v := range values {
			if v > max {
				max = v
			}
		}
		if max <= 0 {
			max = 1
		}
	}

	var b strings.Builder
	for i := len(values); i < width; i++ {
		b.WriteRune(sparkLevels[0])
	}
	for _, v := range values {
		if v < 0 {
			v = 0
		}
		if v > max {
			v = max
		}
		idx := int(v / max * float64(len(sparkLevels)-1))
		b.WriteRune(sparkLevels[idx])
	}
	return b.String()
}

func gaugeBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int((pct / 100) * float64(width))
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %5.1f%%",
		strings.Repeat(gaugeFill, filled),
		strings.Repeat(gaugeEmpty, width-filled),
		pct)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
