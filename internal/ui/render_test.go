package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparklineScalesToMax(t *testing.T) {
	assert.Equal(t, " ▄█", sparkline([]float64{0, 50, 100}, 3, 100))
}

func TestSparklinePadsAndTrims(t *testing.T) {
	// Fewer samples than width: left-padded with the empty level.
	assert.Equal(t, 5, len([]rune(sparkline([]float64{100}, 5, 100))))
	assert.Equal(t, "    █", sparkline([]float64{100}, 5, 100))

	// More samples than width: only the newest survive.
	assert.Equal(t, "██", sparkline([]float64{0, 0, 100, 100}, 2, 100))
}

func TestSparklinePeakScaling(t *testing.T) {
	// max <= 0 scales against the window's own peak.
	assert.Equal(t, " ▄█", sparkline([]float64{0, 400, 800}, 3, 0))
	// All-zero window must not divide by zero.
	assert.Equal(t, "   ", sparkline([]float64{0, 0, 0}, 3, 0))
}

func TestSparklineClampsOutOfRange(t *testing.T) {
	assert.Equal(t, " █", sparkline([]float64{-5, 200}, 2, 100))
}

func TestGaugeBar(t *testing.T) {
	assert.Equal(t, "[█████░░░░░]  50.0%", gaugeBar(50, 10))
	assert.Equal(t, "[░░░░░░░░░░]   0.0%", gaugeBar(-10, 10))
	assert.Equal(t, "[██████████] 100.0%", gaugeBar(250, 10))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "héll…", truncate("héllo world", 5))
}

func TestThemeIndex(t *testing.T) {
	assert.Equal(t, 0, themeIndex("default"))
	assert.Equal(t, 2, themeIndex("mono"))
	assert.Equal(t, 0, themeIndex("no-such-theme"))
}
