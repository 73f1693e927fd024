package app

import (
	"sort"
	"strings"

	"termdash/internal/model"
)

// TopN caps the process view when no filter is active.
const TopN = 20

// Row is one display entry of the process view.
type Row struct {
	PID        int32   `json:"pid"`
	Name       string  `json:"name"`
	CPUPercent float64 `json:"cpu_percent"`
	MemRSS     uint64  `json:"mem_rss"`
}

// BuildView projects a snapshot's process map into the display list.
// With an empty query every process competes and the result is capped
// at TopN; with a query only case-insensitive name matches are kept,
// uncapped. Both variants sort descending by CPU, ties broken by pid
// so repeated builds over the same snapshot agree.
func BuildView(procs map[int32]model.Process, query string) []Row {
	q := strings.ToLower(query)
	rows := make([]Row, 0, len(procs))
	for _, p := range procs {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		rows = append(rows, Row{
			PID:        p.PID,
			Name:       p.Name,
			CPUPercent: p.CPUPercent,
			MemRSS:     p.MemRSS,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CPUPercent != rows[j].CPUPercent {
			return rows[i].CPUPercent > rows[j].CPUPercent
		}
		return rows[i].PID < rows[j].PID
	})
	if q == "" && len(rows) > TopN {
		rows = rows[:TopN]
	}
	return rows
}
