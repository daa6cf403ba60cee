package sand

// Water sinks beneath nothing but sand, falls, spills diagonally and then
// flows sideways.
type Water struct {
	body
	dir int
}

func (wt *Water) Update(w *World) { w.flow(&wt.body, &wt.dir) }

// Acid flows like water at a throttled cadence and eats adjacent wood on
// every tick.
type Acid struct {
	body
	dir      int
	slowness int
	wait     int
}

func (a *Acid) Update(w *World) {
	w.corrode(a)
	if a.wait > 0 {
		a.wait--
		return
	}
	a.wait = a.slowness
	w.flow(&a.body, &a.dir)
}

// flow is the liquid rule shared by water and acid.
func (w *World) flow(b *body, dir *int) {
	n := Sample(w.grid, b.pos)

	// Sand landed on our coordinate: trade places with it.
	if n[Self] == LayerSand && n[Up] != LayerBoundary {
		w.move(b, 0, -1, LayerSand)
		return
	}
	if b.can(n, Down) {
		w.move(b, 0, 1, LayerEmpty)
		*dir = w.randomDir()
		return
	}
	if w.fallDiagonal(b, n) {
		return
	}

	if b.can(n, lateral(*dir)) {
		w.move(b, *dir, 0, LayerEmpty)
		return
	}
	*dir = -*dir
	if b.can(n, lateral(*dir)) {
		w.move(b, *dir, 0, LayerEmpty)
	}
}

// corrode wears down every wood cell orthogonally adjacent to a. Dissolved
// wood turns into smoke.
func (w *World) corrode(a *Acid) {
	w.reg.Each(KindWood, func(c Cell) bool {
		wood := c.(*Wood)
		if !a.pos.orthogonal(wood.pos) {
			return true
		}
		if w.wear(wood) {
			w.log.Debug("wood dissolved", "pos", wood.pos, "tick", w.tick)
			w.spawnSmoke(wood.pos)
		}
		return true
	})
}

func lateral(dir int) int {
	if dir < 0 {
		return Left
	}
	return Right
}
