package config

import "flag"

// Config carries runtime options for termdash. The sampling interval
// and history length are fixed; only display options are flags.
type Config struct {
	Theme  string
	Filter string
	JSON   bool
	Top    int
}

func Default() Config {
	return Config{
		Theme:  "default",
		Filter: "",
		JSON:   false,
		Top:    20,
	}
}

// FromFlags parses command-line flags.
func FromFlags(args []string) Config {
	cfg := Default()
	fs := flag.NewFlagSet("termdash", flag.ContinueOnError)
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "initial theme preset: default|ocean|mono")
	fs.StringVar(&cfg.Filter, "filter", cfg.Filter, "initial process name filter")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "print one snapshot as JSON and exit")
	fs.IntVar(&cfg.Top, "top", cfg.Top, "process count in the JSON export")
	_ = fs.Parse(args)
	return cfg
}
