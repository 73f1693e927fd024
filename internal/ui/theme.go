package ui

import (
	"github.com/charmbracelet/lipgloss"

	"termdash/internal/app"
)

// Theme is one cosmetic palette. The theme key cycles through the
// presets below; app.ThemeCount must match their number.
type Theme struct {
	Name       string
	Title      lipgloss.Color
	Subtle     lipgloss.Color
	Border     lipgloss.Color
	CPUGraph   lipgloss.Color
	MemGraph   lipgloss.Color
	NetGraph   lipgloss.Color
	Gauge      lipgloss.Color
	GaugeAlert lipgloss.Color
	SelectedFg lipgloss.Color
	SelectedBg lipgloss.Color
	Accent     lipgloss.Color
}

var themes = [app.ThemeCount]Theme{
	{
		Name:       "default",
		Title:      lipgloss.Color("45"),
		Subtle:     lipgloss.Color("244"),
		Border:     lipgloss.Color("60"),
		CPUGraph:   lipgloss.Color("40"),
		MemGraph:   lipgloss.Color("170"),
		NetGraph:   lipgloss.Color("81"),
		Gauge:      lipgloss.Color("40"),
		GaugeAlert: lipgloss.Color("196"),
		SelectedFg: lipgloss.Color("229"),
		SelectedBg: lipgloss.Color("57"),
		Accent:     lipgloss.Color("220"),
	},
	{
		Name:       "ocean",
		Title:      lipgloss.Color("39"),
		Subtle:     lipgloss.Color("66"),
		Border:     lipgloss.Color("24"),
		CPUGraph:   lipgloss.Color("51"),
		MemGraph:   lipgloss.Color("39"),
		NetGraph:   lipgloss.Color("87"),
		Gauge:      lipgloss.Color("51"),
		GaugeAlert: lipgloss.Color("203"),
		SelectedFg: lipgloss.Color("231"),
		SelectedBg: lipgloss.Color("25"),
		Accent:     lipgloss.Color("117"),
	},
	{
		Name:       "mono",
		Title:      lipgloss.Color("255"),
		Subtle:     lipgloss.Color("243"),
		Border:     lipgloss.Color("240"),
		CPUGraph:   lipgloss.Color("250"),
		MemGraph:   lipgloss.Color("250"),
		NetGraph:   lipgloss.Color("250"),
		Gauge:      lipgloss.Color("250"),
		GaugeAlert: lipgloss.Color("255"),
		SelectedFg: lipgloss.Color("16"),
		SelectedBg: lipgloss.Color("252"),
		Accent:     lipgloss.Color("255"),
	},
}

// themeIndex maps a preset name to its slot, defaulting to 0.
func themeIndex(name string) int {
	for i, t := range themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}
