package sand

// Cell is a live material entity. The registry owns every Cell; the grid only
// records its layer.
type Cell interface {
	Kind() Kind
	Pos() Point
	Layer() Layer
	Passable() LayerSet
	Alive() bool

	// Update runs the cell's rule for one tick.
	Update(w *World)

	cellBody() *body
}

// body is the state shared by all variants.
type body struct {
	kind     Kind
	pos      Point
	layer    Layer
	passable LayerSet
	dead     bool
}

func newBody(k Kind, p Point) body {
	return body{kind: k, pos: p, layer: layerOf(k), passable: passableFor(k)}
}

func (b *body) Kind() Kind         { return b.kind }
func (b *body) Pos() Point         { return b.pos }
func (b *body) Layer() Layer       { return b.layer }
func (b *body) Passable() LayerSet { return b.passable }
func (b *body) Alive() bool        { return !b.dead }
func (b *body) cellBody() *body    { return b }

// can reports whether every listed neighbor index is passable.
func (b *body) can(n Neighborhood, idx ...int) bool {
	for _, i := range idx {
		if !b.passable.Has(n[i]) {
			return false
		}
	}
	return true
}

// Solid is inert and never consumed.
type Solid struct{ body }

func (*Solid) Update(*World) {}

// Stasis is a solid whose presence slows the simulation cadence.
type Stasis struct{ body }

func (*Stasis) Update(*World) {}

// Wood is a combustible solid. Adjacent fire and acid wear its resistance
// down; it is destroyed the first time the counter goes negative.
type Wood struct {
	body
	resistance int
}

func (*Wood) Update(*World) {}

// Resistance reports the remaining burn resistance.
func (wd *Wood) Resistance() int { return wd.resistance }
