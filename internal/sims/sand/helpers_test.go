package sand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T, w, h int, tweak func(*Params)) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Params.ResyncEvery = 0
	if tweak != nil {
		tweak(&cfg.Params)
	}
	return NewWithConfig(cfg)
}

func mustSpawn(t *testing.T, w *World, k Kind, x, y int) Cell {
	t.Helper()
	c, err := w.Spawn(k, Point{X: x, Y: y})
	require.NoError(t, err)
	return c
}

func layerAt(w *World, x, y int) Layer { return w.LayerAt(Point{X: x, Y: y}) }
