package app

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"lifepaint/internal/core"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	if cfg.WindowSize != 750 || cfg.Speed != 0.1 {
		t.Fatalf("defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
	if cfg.TickInterval() != 100*time.Millisecond {
		t.Fatalf("tick interval %v", cfg.TickInterval())
	}
	if cfg.GridSize() != (core.Size{Rows: 75, Cols: 75}) {
		t.Fatalf("grid size %v", cfg.GridSize())
	}
}

func TestConfigFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-window_size", "305", "-speed", "0.25"}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.GridSize() != (core.Size{Rows: 30, Cols: 30}) {
		t.Fatalf("grid size %v, want truncated 30x30", cfg.GridSize())
	}
	opts := cfg.Options()
	if opts.WindowSize != 305 || opts.TickInterval != 250*time.Millisecond {
		t.Fatalf("options %+v", opts)
	}
}

func TestConfigValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"zero window", Config{WindowSize: 0, Speed: 0.1}},
		{"negative window", Config{WindowSize: -10, Speed: 0.1}},
		{"zero speed", Config{WindowSize: 100, Speed: 0}},
		{"negative speed", Config{WindowSize: 100, Speed: -1}},
		{"sub-cell window", Config{WindowSize: core.CellSize - 1, Speed: 0.1}},
		{"sub-nanosecond speed", Config{WindowSize: 100, Speed: 1e-12}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigRejectsMalformedFlag(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-window_size", "big"}); err == nil {
		t.Fatal("non-numeric window size parsed")
	}
}
