// Package sampler reads host telemetry through gopsutil and exposes
// the three operations the monitor core needs: a full per-tick
// snapshot, best-effort process termination, and on-demand extended
// process detail.
package sampler

import (
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"

	"termdash/internal/model"
)

// Sampler builds Snapshots from procfs. CPU percent is derived from
// cpu.Times deltas between consecutive calls, so the first Sample
// reports 0% CPU.
type Sampler struct {
	prevTotal float64
	prevIdle  float64
	hostname  string
}

func New() *Sampler {
	name := "unknown"
	if info, err := host.Info(); err == nil && info.Hostname != "" {
		name = info.Hostname
	}
	return &Sampler{hostname: name}
}

// Sample reads every resource once and assembles a Snapshot. A resource
// that cannot be read this tick is left out; Sample itself never fails.
func (s *Sampler) Sample() model.Snapshot {
	snap := model.Snapshot{
		Timestamp: time.Now(),
		Hostname:  s.hostname,
		Procs:     make(map[int32]model.Process),
	}

	snap.CPUPercent = s.cpuPercent()

	if vm, err := mem.VirtualMemory(); err == nil {
		snap.MemUsed = vm.Used
		snap.MemTotal = vm.Total
	}

	if parts, err := disk.Partitions(false); err == nil {
		for _, p := range parts {
			usage, err := disk.Usage(p.Mountpoint)
			if err != nil || usage.Total == 0 {
				continue
			}
			snap.Disks = append(snap.Disks, model.Disk{
				Mount: p.Mountpoint,
				Total: usage.Total,
				Used:  usage.Used,
			})
		}
	}

	if counters, err := net.IOCounters(true); err == nil {
		for _, c := range counters {
			if c.BytesRecv == 0 && c.BytesSent == 0 {
				continue
			}
			snap.Nets = append(snap.Nets, model.NetInterface{
				Name:      c.Name,
				RecvBytes: c.BytesRecv,
				SentBytes: c.BytesSent,
			})
		}
	}

	procs, _ := process.Processes()
	for _, p := range procs {
		// Skip kernel threads without a name
		name, err := p.Name()
		if err != nil || name == "" {
			continue
		}
		cpuPct, _ := p.CPUPercent()
		var rss uint64
		if mi, err := p.MemoryInfo(); err == nil && mi != nil {
			rss = mi.RSS
		}
		snap.Procs[p.Pid] = model.Process{
			PID:        p.Pid,
			Name:       name,
			CPUPercent: cpuPct,
			MemRSS:     rss,
		}
	}

	return snap
}

// Terminate sends SIGTERM to pid. Failures (already exited, not
// permitted) are deliberately dropped: the next snapshot reflects
// whatever actually happened.
func (s *Sampler) Terminate(pid int32) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return
	}
	_ = p.Terminate()
}

// Inspect fetches the extended fields for one pid. The bool is false
// when the process is gone.
func (s *Sampler) Inspect(pid int32) (model.ProcessDetail, bool) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return model.ProcessDetail{}, false
	}
	name, err := p.Name()
	if err != nil {
		return model.ProcessDetail{}, false
	}

	d := model.ProcessDetail{PID: pid, Name: name}
	if st, err := p.Status(); err == nil {
		d.Status = strings.Join(st, ",")
	}
	if mi, err := p.MemoryInfo(); err == nil && mi != nil {
		d.MemRSS = mi.RSS
		d.MemVMS = mi.VMS
	}
	if ct, err := p.CreateTime(); err == nil {
		d.CreateTime = time.UnixMilli(ct)
	}
	if io, err := p.IOCounters(); err == nil && io != nil {
		d.ReadBytes = io.ReadBytes
		d.WriteBytes = io.WriteBytes
	}
	if cmd, err := p.Cmdline(); err == nil {
		d.Cmdline = cmd
	}
	return d, true
}

func (s *Sampler) cpuPercent() float64 {
	times, err := cpu.Times(false)
	if err != nil || len(times) == 0 {
		return 0
	}
	cur := times[0]
	curTotal := cur.Total()
	curIdle := cur.Idle + cur.Iowait

	var pct float64
	if s.prevTotal > 0 {
		dt := curTotal - s.prevTotal
		di := curIdle - s.prevIdle
		if dt > 0 {
			pct = 100 * (1 - di/dt)
		}
	}
	s.prevTotal, s.prevIdle = curTotal, curIdle
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}
