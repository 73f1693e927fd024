// Package ui renders the monitor state with Bubble Tea and Lip Gloss.
// All state transitions live in internal/app; this package only wires
// messages through and paints frames.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"termdash/internal/app"
	"termdash/internal/config"
)

// Model adapts the application core to the Bubble Tea loop.
type Model struct {
	app    *app.App
	width  int
	height int
}

func New(cfg config.Config, provider app.Provider) *Model {
	a := app.New(provider, cfg.Filter)
	a.Theme = themeIndex(cfg.Theme)
	return &Model{app: a, width: 120, height: 40}
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(app.TickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd { return tickCmd() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		cmd := m.app.HandleKey(msg)
		if m.app.Quitting {
			return m, tea.Quit
		}
		return m, cmd
	case tickMsg:
		m.app.HandleTick()
		return m, tickCmd()
	}
	return m, nil
}

func (m *Model) View() string {
	th := themes[m.app.Theme]

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(th.Title)
	subtleStyle := lipgloss.NewStyle().Foreground(th.Subtle)
	labelStyle := lipgloss.NewStyle().Foreground(th.Accent).Bold(true)
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Padding(0, 1).
		MarginRight(1)

	card := func(title, body string) string {
		return cardStyle.Render(labelStyle.Render(title) + "\n" + body)
	}

	s := m.app.Snapshot

	hints := " [q] quit  [/] filter  [↑/↓] select  [x] kill  [enter] inspect  [t] theme "
	switch m.app.Mode {
	case app.ModeSearch:
		hints = " [enter] apply  [esc] clear "
	case app.ModeDetail:
		hints = " [esc] back "
	}
	header := titleStyle.Render(" termdash ") +
		subtleStyle.Render(fmt.Sprintf(" %s · %s · %s", s.Hostname, th.Name,
			s.Timestamp.Format("15:04:05"))) +
		subtleStyle.Render(hints)

	graphW := 40
	cpuStyle := lipgloss.NewStyle().Foreground(th.CPUGraph)
	memStyle := lipgloss.NewStyle().Foreground(th.MemGraph)
	netStyle := lipgloss.NewStyle().Foreground(th.NetGraph)

	cpuCard := card("CPU",
		cpuStyle.Render(sparkline(m.app.CPUHist.Values(), graphW, 100))+
			fmt.Sprintf(" %5.1f%%", m.app.CPUHist.Latest()))
	memCard := card("Memory",
		memStyle.Render(sparkline(m.app.MemHist.Values(), graphW, 100))+
			fmt.Sprintf(" %5.1f%%", m.app.MemHist.Latest()))
	netCard := card("Network",
		netStyle.Render(sparkline(m.app.NetRxHist.Values(), graphW, 0))+
			fmt.Sprintf(" ↓ %s/s", humanize.IBytes(uint64(m.app.NetRxHist.Latest())))+"\n"+
			netStyle.Render(sparkline(m.app.NetTxHist.Values(), graphW, 0))+
			fmt.Sprintf(" ↑ %s/s", humanize.IBytes(uint64(m.app.NetTxHist.Latest()))))

	gaugeStyle := func(pct float64) lipgloss.Style {
		if pct > 80 {
			return lipgloss.NewStyle().Foreground(th.GaugeAlert)
		}
		return lipgloss.NewStyle().Foreground(th.Gauge)
	}
	cpuPct := m.app.CPUHist.Latest()
	memPct := m.app.MemHist.Latest()
	gauges := card("Load",
		"CPU "+gaugeStyle(cpuPct).Render(gaugeBar(cpuPct, 30))+"\n"+
			"MEM "+gaugeStyle(memPct).Render(gaugeBar(memPct, 30)))

	var center string
	if m.app.Mode == app.ModeDetail {
		center = card("Process detail", m.detailBody(subtleStyle))
	} else {
		center = card(m.tableTitle(), m.processTable(th)) + "\n" + m.searchBar(th)
	}

	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Disks", m.diskTable(subtleStyle)),
		card("Interfaces", m.netTable(subtleStyle)))

	graphs := lipgloss.JoinHorizontal(lipgloss.Top, cpuCard, memCard, netCard)
	mid := lipgloss.JoinHorizontal(lipgloss.Top, gauges, center)

	return lipgloss.JoinVertical(lipgloss.Left, header, graphs, mid, bottom)
}

func (m *Model) tableTitle() string {
	if q := m.app.Query(); q != "" {
		return fmt.Sprintf("Processes matching %q", q)
	}
	return fmt.Sprintf("Top %d processes (CPU)", app.TopN)
}

func (m *Model) processTable(th Theme) string {
	selStyle := lipgloss.NewStyle().Foreground(th.SelectedFg).Background(th.SelectedBg).Bold(true)

	var b strings.Builder
	fmt.Fprintf(&b, "%-7s %-24s %7s %10s", "PID", "NAME", "CPU%", "MEM")
	if len(m.app.View) == 0 {
		b.WriteString("\n(no processes)")
		return b.String()
	}
	for i, r := range m.app.View {
		line := fmt.Sprintf("%-7d %-24s %7.1f %10s",
			r.PID, truncate(r.Name, 24), r.CPUPercent, humanize.IBytes(r.MemRSS))
		if i == m.app.Cursor {
			line = selStyle.Render(line)
		}
		b.WriteString("\n" + line)
	}
	return b.String()
}

func (m *Model) searchBar(th Theme) string {
	style := lipgloss.NewStyle().Foreground(th.Subtle)
	if m.app.Mode == app.ModeSearch {
		style = lipgloss.NewStyle().Foreground(th.Accent)
		return style.Render(" / " + m.app.Search.View())
	}
	q := m.app.Query()
	if q == "" {
		q = "(press / to filter)"
	}
	return style.Render(" / " + q)
}

func (m *Model) detailBody(subtle lipgloss.Style) string {
	if !m.app.DetailOK {
		return subtle.Render("process has exited")
	}
	d := m.app.Detail
	return fmt.Sprintf("pid      %d\nname     %s\nstatus   %s\nrss      %s\nvms      %s\nstarted  %s\nio r/w   %s / %s\ncmdline  %s",
		d.PID,
		d.Name,
		d.Status,
		humanize.IBytes(d.MemRSS),
		humanize.IBytes(d.MemVMS),
		d.CreateTime.Format("Jan 2 15:04:05"),
		humanize.IBytes(d.ReadBytes),
		humanize.IBytes(d.WriteBytes),
		truncate(d.Cmdline, 60))
}

func (m *Model) diskTable(subtle lipgloss.Style) string {
	if len(m.app.Snapshot.Disks) == 0 {
		return subtle.Render("(none)")
	}
	rows := make([]string, 0, len(m.app.Snapshot.Disks))
	for _, d := range m.app.Snapshot.Disks {
		var pct float64
		if d.Total > 0 {
			pct = float64(d.Used) * 100 / float64(d.Total)
		}
		rows = append(rows, fmt.Sprintf("%-20s %9s %5.1f%%",
			truncate(d.Mount, 20), humanize.IBytes(d.Total), pct))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) netTable(subtle lipgloss.Style) string {
	if len(m.app.Snapshot.Nets) == 0 {
		return subtle.Render("(none)")
	}
	rows := make([]string, 0, len(m.app.Snapshot.Nets))
	for _, n := range m.app.Snapshot.Nets {
		rows = append(rows, fmt.Sprintf("%-12s ↓ %9s ↑ %9s",
			truncate(n.Name, 12), humanize.IBytes(n.RecvBytes), humanize.IBytes(n.SentBytes)))
	}
	return strings.Join(rows, "\n")
}

// Run starts the program in the alternate screen. Bubble Tea owns the
// terminal lifecycle and restores it on every exit path, panics
// included.
func Run(cfg config.Config, provider app.Provider) error {
	prog := tea.NewProgram(New(cfg, provider), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
