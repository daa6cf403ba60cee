package sand

// Eraser is a stationary tool cell with no grid footprint. It destroys
// whatever non-exempt cell shares its coordinate.
type Eraser struct{ body }

func (e *Eraser) Update(w *World) {
	if Layer(w.grid.At(e.pos.X, e.pos.Y)) == LayerEmpty {
		return
	}
	for _, k := range Kinds() {
		if k == KindEraser || w.exempt[k] {
			continue
		}
		w.reg.Each(k, func(c Cell) bool {
			if c.Pos() == e.pos {
				w.remove(c)
			}
			return true
		})
	}
}
