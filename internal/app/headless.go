package app

import (
	"context"
	"log/slog"
	"time"

	"mad-sand/internal/core"
)

// StepObserver is called after every simulated tick with its wall time.
type StepObserver func(took time.Duration)

type cadenced interface {
	CadenceMultiplier() int
}

type counter interface {
	Counts() map[string]int
}

// Runner steps a sim without a window.
type Runner struct {
	Sim core.Sim
	// Ticks stops the run after that many steps; 0 runs until ctx is done.
	Ticks int
	// TPS paces the run; 0 steps as fast as possible.
	TPS      int
	LogEvery int
	Log      *slog.Logger
	OnStep   StepObserver
}

// Run steps the sim until Ticks is reached or ctx is cancelled and reports how
// many ticks ran. Cancellation is returned as ctx.Err().
func (r *Runner) Run(ctx context.Context) (int, error) {
	log := r.Log
	if log == nil {
		log = slog.Default()
	}
	var (
		ticker   *time.Ticker
		interval time.Duration
		mult     = 1
	)
	if r.TPS > 0 {
		interval = time.Second / time.Duration(r.TPS)
		ticker = time.NewTicker(interval)
		defer ticker.Stop()
	}

	n := 0
	for r.Ticks <= 0 || n < r.Ticks {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if ticker != nil {
			if c, ok := r.Sim.(cadenced); ok {
				if m := c.CadenceMultiplier(); m != mult && m >= 1 {
					mult = m
					ticker.Reset(interval * time.Duration(mult))
				}
			}
			select {
			case <-ctx.Done():
				return n, ctx.Err()
			case <-ticker.C:
			}
		}

		start := time.Now()
		r.Sim.Step()
		took := time.Since(start)
		n++
		if r.OnStep != nil {
			r.OnStep(took)
		}
		if r.LogEvery > 0 && n%r.LogEvery == 0 {
			attrs := []any{"tick", n, "took", took}
			if c, ok := r.Sim.(counter); ok {
				attrs = append(attrs, "cells", c.Counts())
			}
			log.Info("progress", attrs...)
		}
	}
	return n, nil
}
