package model

import "time"

// Process is one row of the process table: the fields cheap enough to
// collect for every pid on every tick.
type Process struct {
	PID        int32   `json:"pid"`
	Name       string  `json:"name"`
	CPUPercent float64 `json:"cpu_percent"`
	MemRSS     uint64  `json:"mem_rss"`
}

// ProcessDetail carries the extended fields fetched only while a
// process is being inspected.
type ProcessDetail struct {
	PID        int32     `json:"pid"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	MemRSS     uint64    `json:"mem_rss"`
	MemVMS     uint64    `json:"mem_vms"`
	CreateTime time.Time `json:"create_time"`
	ReadBytes  uint64    `json:"read_bytes"`
	WriteBytes uint64    `json:"write_bytes"`
	Cmdline    string    `json:"cmdline"`
}

// Disk is one mounted filesystem's usage.
type Disk struct {
	Mount string `json:"mount"`
	Total uint64 `json:"total"`
	Used  uint64 `json:"used"`
}

// NetInterface holds cumulative traffic counters for one interface.
type NetInterface struct {
	Name      string `json:"name"`
	RecvBytes uint64 `json:"recv_bytes"`
	SentBytes uint64 `json:"sent_bytes"`
}

// Snapshot is one point-in-time reading of the whole host. It is built
// fresh each tick and never mutated afterwards; a resource that could
// not be read is simply absent.
type Snapshot struct {
	Timestamp  time.Time         `json:"timestamp"`
	Hostname   string            `json:"hostname"`
	CPUPercent float64           `json:"cpu_percent"`
	MemUsed    uint64            `json:"mem_used"`
	MemTotal   uint64            `json:"mem_total"`
	Disks      []Disk            `json:"disks"`
	Nets       []NetInterface    `json:"nets"`
	Procs      map[int32]Process `json:"procs"`
}

// MemPercent returns used memory as a percentage, 0 when the total is
// unknown.
func (s Snapshot) MemPercent() float64 {
	if s.MemTotal == 0 {
		return 0
	}
	return float64(s.MemUsed) * 100 / float64(s.MemTotal)
}
