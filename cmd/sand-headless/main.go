package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mad-sand/internal/app"
	"mad-sand/internal/core"
	"mad-sand/internal/metrics"
	_ "mad-sand/internal/sims/sand"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 0
	cfg.Bind(flag.CommandLine)
	ticks := flag.Int("ticks", 1000, "ticks to run (0 runs until interrupted)")
	logEvery := flag.Int("log-every", 100, "log populations every n ticks (0 disables)")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		log.Error("select sim", "error", err)
		os.Exit(2)
	}
	sim := factory(cfg.Overrides())
	if l, ok := sim.(interface{ SetLogger(*slog.Logger) }); ok {
		l.SetLogger(log)
	}
	sim.Reset(cfg.Seed)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner := &app.Runner{Sim: sim, Ticks: *ticks, TPS: cfg.TPS, LogEvery: *logEvery, Log: log}
	if src, ok := sim.(metrics.Source); ok {
		collector := metrics.New(prometheus.NewRegistry())
		runner.OnStep = func(took time.Duration) { collector.Observe(src, took) }
		if *metricsAddr != "" {
			srv := &http.Server{Addr: *metricsAddr, Handler: collector.Handler(), ReadHeaderTimeout: 5 * time.Second}
			go func() {
				log.Info("serving metrics", "addr", *metricsAddr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("metrics server", "error", err)
				}
			}()
			defer srv.Close()
		}
	} else if *metricsAddr != "" {
		log.Warn("sim does not expose metrics", "sim", sim.Name())
	}

	size := sim.Size()
	log.Info("starting", "sim", sim.Name(), "w", size.W, "h", size.H, "ticks", *ticks)
	start := time.Now()
	n, err := runner.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("run", "error", err)
		os.Exit(1)
	}
	log.Info("done", "ticks", n, "elapsed", time.Since(start))
}
