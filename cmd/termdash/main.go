package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"termdash/internal/app"
	"termdash/internal/config"
	"termdash/internal/model"
	"termdash/internal/sampler"
	"termdash/internal/ui"
)

func main() {
	cfg := config.FromFlags(os.Args[1:])

	var err error
	if cfg.JSON {
		err = runJSON(cfg)
	} else {
		err = ui.Run(cfg, sampler.New())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "termdash:", err)
		os.Exit(1)
	}
}

// runJSON prints a single snapshot to stdout. Two samples are taken so
// CPU percentages have a delta to work from.
func runJSON(cfg config.Config) error {
	s := sampler.New()
	s.Sample()
	time.Sleep(500 * time.Millisecond)
	snap := s.Sample()

	top := app.BuildView(snap.Procs, cfg.Filter)
	if cfg.Top > 0 && len(top) > cfg.Top {
		top = top[:cfg.Top]
	}
	snap.Procs = nil

	out := struct {
		Snapshot model.Snapshot `json:"snapshot"`
		Top      []app.Row      `json:"top"`
	}{snap, top}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
