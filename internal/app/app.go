// Package app holds the live state of the monitor: the latest
// snapshot, the rolling histories, the filtered process view with its
// cursor, and the modal key dispatch. It is driven by exactly two
// entry points, HandleKey and HandleTick, both called from the single
// Bubble Tea update goroutine, so nothing here needs locking.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"termdash/internal/history"
	"termdash/internal/model"
)

const (
	// TickInterval is the fixed sampling cadence.
	TickInterval = time.Second
	// HistoryLen is the sample count behind each sparkline.
	HistoryLen = 100
	// ThemeCount is the number of presets the theme key cycles through.
	ThemeCount = 3
)

// Mode selects which handler a key event is routed to.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeDetail
)

// Provider is the metrics source the core samples and acts through.
type Provider interface {
	Sample() model.Snapshot
	Terminate(pid int32)
	Inspect(pid int32) (model.ProcessDetail, bool)
}

// App is the whole mutable state of the monitor.
type App struct {
	Snapshot  model.Snapshot
	CPUHist   *history.Series
	MemHist   *history.Series
	NetRxHist *history.Series
	NetTxHist *history.Series

	View   []Row
	Cursor int

	Mode   Mode
	Search textinput.Model

	InspectedPID int32
	Detail       model.ProcessDetail
	DetailOK     bool

	Theme    int
	Quitting bool

	provider Provider
	prevRx   uint64
	prevTx   uint64
	havePrev bool
}

// New builds the initial state and takes a first sample so the first
// frame has data to paint.
func New(p Provider, filter string) *App {
	search := textinput.New()
	search.Placeholder = "process name..."
	search.CharLimit = 40
	search.SetValue(filter)

	a := &App{
		CPUHist:   history.NewSeries(HistoryLen),
		MemHist:   history.NewSeries(HistoryLen),
		NetRxHist: history.NewSeries(HistoryLen),
		NetTxHist: history.NewSeries(HistoryLen),
		Search:    search,
		provider:  p,
	}
	a.HandleTick()
	return a
}

// Query returns the current search string.
func (a *App) Query() string { return a.Search.Value() }

// Selected returns the row under the cursor.
func (a *App) Selected() (Row, bool) {
	if len(a.View) == 0 {
		return Row{}, false
	}
	return a.View[a.Cursor], true
}

// NextProcess moves the cursor down one row, wrapping to the top.
func (a *App) NextProcess() {
	if len(a.View) == 0 {
		return
	}
	a.Cursor = (a.Cursor + 1) % len(a.View)
}

// PrevProcess moves the cursor up one row, wrapping to the bottom.
func (a *App) PrevProcess() {
	if len(a.View) == 0 {
		return
	}
	a.Cursor = (a.Cursor + len(a.View) - 1) % len(a.View)
}

// HandleTick samples the provider, feeds the histories, rebuilds the
// process view and re-clamps the cursor. While a process is being
// inspected its detail record is refreshed too.
func (a *App) HandleTick() {
	snap := a.provider.Sample()

	a.CPUHist.Push(snap.CPUPercent)
	a.MemHist.Push(snap.MemPercent())

	var rx, tx uint64
	for _, n := range snap.Nets {
		rx += n.RecvBytes
		tx += n.SentBytes
	}
	if a.havePrev {
		a.NetRxHist.Push(saturatingDelta(rx, a.prevRx))
		a.NetTxHist.Push(saturatingDelta(tx, a.prevTx))
	} else {
		a.NetRxHist.Push(0)
		a.NetTxHist.Push(0)
	}
	a.prevRx, a.prevTx = rx, tx
	a.havePrev = true

	a.Snapshot = snap
	a.rebuildView()

	if a.Mode == ModeDetail {
		a.Detail, a.DetailOK = a.provider.Inspect(a.InspectedPID)
	}
}

// HandleKey routes one key press according to the current mode.
// Unlisted keys are no-ops.
func (a *App) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		a.Quitting = true
		return nil
	}
	switch a.Mode {
	case ModeNormal:
		return a.handleNormal(msg)
	case ModeSearch:
		return a.handleSearch(msg)
	case ModeDetail:
		return a.handleDetail(msg)
	}
	return nil
}

func (a *App) handleNormal(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc":
		a.Quitting = true

	case "down", "j":
		a.NextProcess()

	case "up", "k":
		a.PrevProcess()

	case "x", "delete":
		// Fire and forget: if the kill fails the next tick shows the
		// process unchanged.
		if row, ok := a.Selected(); ok {
			a.provider.Terminate(row.PID)
		}

	case "/":
		a.Cursor = 0
		a.Mode = ModeSearch
		a.Search.Focus()
		return textinput.Blink

	case "enter":
		if row, ok := a.Selected(); ok {
			a.InspectedPID = row.PID
			a.Detail, a.DetailOK = a.provider.Inspect(row.PID)
			a.Mode = ModeDetail
		}

	case "t":
		a.Theme = (a.Theme + 1) % ThemeCount
	}
	return nil
}

func (a *App) handleSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		a.Mode = ModeNormal
		a.Search.Blur()
		return nil
	case "esc":
		a.Mode = ModeNormal
		a.Search.SetValue("")
		a.Search.Blur()
		a.rebuildView()
		return nil
	}

	var cmd tea.Cmd
	a.Search, cmd = a.Search.Update(msg)
	a.rebuildView()
	return cmd
}

func (a *App) handleDetail(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "backspace":
		a.InspectedPID = 0
		a.DetailOK = false
		a.Mode = ModeNormal
	}
	return nil
}

// rebuildView recomputes the display projection and keeps the cursor
// in range. Selection is positional: after a rebuild the cursor may
// point at a different pid than before.
func (a *App) rebuildView() {
	a.View = BuildView(a.Snapshot.Procs, a.Query())
	if len(a.View) == 0 {
		a.Cursor = 0
	} else if a.Cursor >= len(a.View) {
		a.Cursor = len(a.View) - 1
	}
}

func saturatingDelta(cur, prev uint64) float64 {
	if cur < prev {
		return 0
	}
	return float64(cur - prev)
}
