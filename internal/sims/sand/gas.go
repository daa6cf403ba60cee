package sand

// Smoke rises and drifts until its lifetime runs out or it reaches the top of
// the grid.
type Smoke struct {
	body
	lifetime int
	max      int
	dir      int
}

// Lifetime reports the remaining ticks.
func (s *Smoke) Lifetime() int { return s.lifetime }

func (s *Smoke) Update(w *World) {
	s.lifetime--
	n := Sample(w.grid, s.pos)
	if s.lifetime <= 0 || n.TouchesTop() {
		w.remove(s)
		return
	}
	w.rise(&s.body, n, &s.dir)
}

// rise is the buoyant movement cascade shared by smoke and fire: a normal
// draw biases up-left or up-right, then straight up, then sideways in the
// held direction, turning around when blocked.
func (w *World) rise(b *body, n Neighborhood, dir *int) {
	draw := w.rng.Normal(5, 10)
	switch {
	case draw < 2 && b.can(n, UpLeft, Left):
		w.move(b, -1, -1, LayerEmpty)
	case draw > 8 && b.can(n, UpRight, Right):
		w.move(b, 1, -1, LayerEmpty)
	case b.can(n, Up):
		w.move(b, 0, -1, LayerEmpty)
	case b.can(n, lateral(*dir)):
		w.move(b, *dir, 0, LayerEmpty)
	default:
		*dir = -*dir
	}
}
