package sand

// Sand falls straight down through anything lighter and otherwise slides off
// slopes, held back by friction.
type Sand struct {
	body
	friction float64
	// chance is redrawn only while something rests on top.
	chance float64
}

func (s *Sand) Update(w *World) {
	n := Sample(w.grid, s.pos)
	if n[Up] != LayerEmpty {
		s.chance = w.rng.Float64()
	}
	if s.can(n, Down) {
		w.move(&s.body, 0, 1, LayerEmpty)
		return
	}
	if s.chance <= s.friction {
		return
	}
	if w.fallDiagonal(&s.body, n) {
		s.chance = w.rng.Float64()
	}
}

// fallDiagonal tries a random diagonal first and then the other one. A
// diagonal is open only if the lateral cell beside it is open too.
func (w *World) fallDiagonal(b *body, n Neighborhood) bool {
	dir := w.randomDir()
	for _, dx := range [2]int{dir, -dir} {
		diag, side := DownLeft, Left
		if dx > 0 {
			diag, side = DownRight, Right
		}
		if b.can(n, diag, side) {
			w.move(b, dx, 1, LayerEmpty)
			return true
		}
	}
	return false
}

func (w *World) randomDir() int {
	if w.rng.Bool() {
		return 1
	}
	return -1
}
