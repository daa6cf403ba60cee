package sand

// Fire burns down, feeds on adjacent wood and spreads into it.
type Fire struct {
	body
	lifetime  int
	dir       int
	cling     float64
	variation uint8
}

// Lifetime reports the remaining ticks.
func (f *Fire) Lifetime() int { return f.lifetime }

func (f *Fire) Update(w *World) {
	n := Sample(w.grid, f.pos)
	f.lifetime--
	if n[Self] == LayerWater || f.lifetime <= 0 || n.TouchesTop() {
		w.remove(f)
		return
	}

	f.cling = 0
	w.reg.Each(KindWood, func(c Cell) bool {
		wood := c.(*Wood)
		if !f.pos.adjacent(wood.pos) {
			return true
		}
		f.lifetime += w.cfg.Params.FireFuelGain
		if d := wood.pos.Sub(f.pos); d.Y == 0 || (d.Y == -1 && d.X == 0) {
			f.cling = w.cfg.Params.FireClingChance
		}
		if w.wear(wood) {
			w.ignite(wood.pos)
		}
		return true
	})

	if f.cling > 0 && w.rng.Float64() < f.cling {
		return
	}
	// burning wood may have filled our row or the one above
	w.rise(&f.body, Sample(w.grid, f.pos), &f.dir)
}

// wear takes one point of burn resistance from wood and removes it once the
// counter goes negative. It reports whether the wood was destroyed.
func (w *World) wear(wood *Wood) bool {
	wood.resistance--
	if wood.resistance >= 0 {
		return false
	}
	return w.remove(wood)
}

// ignite replaces burnt wood at p with a long-lived fire and puts smoke in the
// row above it.
func (w *World) ignite(p Point) {
	w.log.Debug("wood burnt", "pos", p, "tick", w.tick)
	if c, err := w.Spawn(KindFire, p); err == nil {
		c.(*Fire).lifetime = w.cfg.Params.BurntFireLifetime
	}
	for dx := -1; dx <= 1; dx++ {
		w.spawnSmoke(p.Add(dx, -1))
	}
}

func (w *World) spawnSmoke(p Point) {
	if _, err := w.Spawn(KindSmoke, p); err != nil {
		w.log.Debug("smoke not placed", "pos", p, "error", err)
	}
}
