package sand

import (
	"github.com/aquilax/go-perlin"
)

// buildDunes lays a solid floor, a few wood posts and rolling sand dunes
// shaped by 1D perlin noise.
func (w *World) buildDunes(seed int64) {
	floor := w.h - 1
	for x := 0; x < w.w; x++ {
		w.place(KindSolid, Point{X: x, Y: floor})
	}
	if floor < 1 {
		return
	}

	amp := w.h / 3
	posts := w.w/40 + 1
	for i := 0; i < posts; i++ {
		x := w.rng.IntN(w.w)
		height := amp/2 + 2 + w.rng.IntN(amp/2+1)
		for y := floor - 1; y >= floor-height && y >= 0; y-- {
			w.place(KindWood, Point{X: x, Y: y})
		}
	}

	noise := perlin.NewPerlin(2, 2, 3, seed)
	for x := 0; x < w.w; x++ {
		v := (noise.Noise1D(float64(x)/float64(w.w)*4) + 1) / 2
		height := int(v * float64(amp))
		for y := floor - 1; y >= floor-height && y >= 0; y-- {
			w.place(KindSand, Point{X: x, Y: y})
		}
	}
	w.log.Debug("scene built", "scene", SceneDunes, "cells", w.reg.Total())
}

// place spawns during scene construction, where collisions are expected.
func (w *World) place(k Kind, p Point) {
	_, _ = w.Spawn(k, p)
}
