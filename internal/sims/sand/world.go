// Package sand is a falling-material particle sandbox: sand, water, acid,
// smoke, fire and wood entities moving over a dense layer grid.
package sand

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"mad-sand/internal/core"
)

var (
	// ErrOccupied is returned when spawning onto a non-empty coordinate.
	ErrOccupied = errors.New("coordinate occupied")
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// Op selects what a queued Request does.
type Op uint8

const (
	OpSpawn Op = iota
	OpErase
)

// Request is a placement or removal waiting for the next tick.
type Request struct {
	Op   Op
	Kind Kind
	Pos  Point
}

// World holds the grid, the registry and the tick clock. It is driven from a
// single goroutine and is not safe for concurrent use.
type World struct {
	cfg Config

	w, h int

	grid *core.ByteGrid
	reg  *Registry
	rng  *core.RNG
	log  *slog.Logger

	tick        uint64
	pending     []Request
	exempt      [kindCount]bool
	lastRepairs int
}

// New returns a sandbox with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox configured from the provided options. The
// world starts empty; call Reset to build the configured scene.
func NewWithConfig(cfg Config) *World {
	cfg.normalize()
	w := &World{
		cfg:  cfg,
		w:    cfg.Width,
		h:    cfg.Height,
		grid: core.NewByteGrid(cfg.Width, cfg.Height),
		reg:  NewRegistry(),
		rng:  core.NewRNG(cfg.Seed),
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	w.SetEraserExempt(cfg.Params.EraserExempt...)
	return w
}

// SetLogger routes the world's debug records to l.
func (w *World) SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	w.log = l.With("sim", w.Name())
}

// SetEraserExempt replaces the set of kinds eraser cells leave alone. Unknown
// names are ignored.
func (w *World) SetEraserExempt(names ...string) {
	var exempt [kindCount]bool
	valid := make([]string, 0, len(names))
	for _, name := range names {
		k, err := ParseKind(name)
		if err != nil {
			w.log.Warn("ignoring eraser exemption", "error", err)
			continue
		}
		exempt[k] = true
		valid = append(valid, k.String())
	}
	w.exempt = exempt
	w.cfg.Params.EraserExempt = valid
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the layer grid, one byte per coordinate.
func (w *World) Cells() []uint8 { return w.grid.Cells() }

// Grid exposes the layer grid.
func (w *World) Grid() *core.ByteGrid { return w.grid }

// Registry exposes the live cells.
func (w *World) Registry() *Registry { return w.reg }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Tick reports how many ticks have run since the last Reset.
func (w *World) Tick() uint64 { return w.tick }

// LastRepairs reports how many grid slots the resync of the latest tick
// corrected. It is zero on ticks without a resync.
func (w *World) LastRepairs() int { return w.lastRepairs }

// LayerAt returns the grid layer at p, or LayerBoundary outside the grid.
func (w *World) LayerAt(p Point) Layer { return Layer(w.grid.At(p.X, p.Y)) }

// Examine reports the raw grid layer at p for inspection tools.
func (w *World) Examine(p Point) Layer {
	l := w.LayerAt(p)
	w.log.Info("examine", "pos", p, "layer", l)
	return l
}

// Reset clears the world and builds the configured scene using deterministic
// randomness. A zero seed falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)
	w.grid.Clear()
	w.reg.Reset()
	w.pending = nil
	w.tick = 0
	w.lastRepairs = 0

	switch w.cfg.Scene {
	case SceneDunes:
		w.buildDunes(effective)
	case SceneEmpty:
	default:
		w.log.Warn("unknown scene, starting empty", "scene", w.cfg.Scene)
	}
}

// Spawn creates a cell of kind k at p. Placement is rejected when the grid
// slot is already occupied, except for erasers, which never occupy a layer.
func (w *World) Spawn(k Kind, p Point) (Cell, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("spawn %v: %w", k, ErrUnknownKind)
	}
	if !w.grid.InBounds(p.X, p.Y) {
		return nil, fmt.Errorf("spawn %s at %s: %w", k, p, ErrOutOfBounds)
	}
	if k != KindEraser && w.LayerAt(p) != LayerEmpty {
		return nil, fmt.Errorf("spawn %s at %s: %w", k, p, ErrOccupied)
	}
	c := w.newCell(k, p)
	w.reg.Add(c)
	if l := c.Layer(); l != LayerEmpty {
		w.grid.Set(p.X, p.Y, uint8(l))
	}
	return c, nil
}

// Erase destroys every cell at p across all buckets and reports how many.
func (w *World) Erase(p Point) int {
	n := 0
	for _, k := range Kinds() {
		w.reg.Each(k, func(c Cell) bool {
			if c.Pos() == p && w.remove(c) {
				n++
			}
			return true
		})
	}
	w.reg.Compact()
	return n
}

// Queue schedules a request for the start of the next Step.
func (w *World) Queue(r Request) { w.pending = append(w.pending, r) }

// Step advances the sandbox by one tick: pending requests, then every live
// cell in bucket order, then the scheduled resync.
func (w *World) Step() {
	w.applyPending()

	// cells spawned during the tick wait for the next one
	var n [kindCount]int
	for _, k := range updateOrder {
		n[k] = w.reg.slots(k)
	}
	for _, k := range updateOrder {
		for i := 0; i < n[k]; i++ {
			c := w.reg.slot(k, i)
			if c.Alive() {
				c.Update(w)
			}
		}
	}
	w.reg.Compact()

	w.tick++
	w.lastRepairs = 0
	if every := w.cfg.Params.ResyncEvery; every > 0 && w.tick%uint64(every) == 0 {
		w.lastRepairs = w.Resync()
	}
}

// Resync forces the grid to agree with every live cell's recorded position and
// reports how many slots it corrected. Cells without a footprint and cells
// outside the grid are skipped.
func (w *World) Resync() int {
	fixed := 0
	for _, k := range Kinds() {
		w.reg.Each(k, func(c Cell) bool {
			l, p := c.Layer(), c.Pos()
			if l == LayerEmpty || !w.grid.InBounds(p.X, p.Y) {
				return true
			}
			if w.LayerAt(p) != l {
				w.grid.Set(p.X, p.Y, uint8(l))
				fixed++
			}
			return true
		})
	}
	if fixed > 0 {
		w.log.Debug("resync repaired drift", "slots", fixed, "tick", w.tick)
	}
	return fixed
}

// CadenceMultiplier reports how much the host should stretch its tick
// interval: StasisMultiplier while any stasis cell is live, 1 otherwise.
func (w *World) CadenceMultiplier() int {
	if w.reg.Len(KindStasis) > 0 {
		return w.cfg.Params.StasisMultiplier
	}
	return 1
}

// Population counts live cells per kind.
func (w *World) Population() map[Kind]int {
	out := make(map[Kind]int, kindCount)
	for _, k := range Kinds() {
		out[k] = w.reg.Len(k)
	}
	return out
}

// Counts is Population keyed by material name.
func (w *World) Counts() map[string]int {
	out := make(map[string]int, kindCount)
	for _, k := range Kinds() {
		out[k.String()] = w.reg.Len(k)
	}
	return out
}

// move writes fill at b's coordinate, shifts b by (dx, dy) and writes b's layer
// at the destination. Callers must have checked the destination against b's
// passable set; nothing here buffers against other cells in the same tick.
func (w *World) move(b *body, dx, dy int, fill Layer) {
	w.grid.Set(b.pos.X, b.pos.Y, uint8(fill))
	b.pos = b.pos.Add(dx, dy)
	w.grid.Set(b.pos.X, b.pos.Y, uint8(b.layer))
}

// remove destroys c: its grid slot is zeroed and it leaves its bucket. It
// reports false when c was already gone.
func (w *World) remove(c Cell) bool {
	if !w.reg.Remove(c) {
		return false
	}
	if c.Layer() != LayerEmpty {
		p := c.Pos()
		w.grid.Set(p.X, p.Y, uint8(LayerEmpty))
	}
	return true
}

func (w *World) applyPending() {
	if len(w.pending) == 0 {
		return
	}
	for _, r := range w.pending {
		switch r.Op {
		case OpSpawn:
			if _, err := w.Spawn(r.Kind, r.Pos); err != nil {
				w.log.Debug("spawn rejected", "error", err)
			}
		case OpErase:
			w.Erase(r.Pos)
		}
	}
	w.pending = w.pending[:0]
}

func (w *World) newCell(k Kind, p Point) Cell {
	b := newBody(k, p)
	params := w.cfg.Params
	switch k {
	case KindSand:
		return &Sand{body: b, friction: params.SandFriction, chance: 1}
	case KindWater:
		return &Water{body: b, dir: w.randomDir()}
	case KindAcid:
		return &Acid{body: b, dir: w.randomDir(), slowness: params.AcidSlowness}
	case KindFire:
		return &Fire{
			body:      b,
			lifetime:  params.FireLifetime,
			dir:       w.randomDir(),
			variation: uint8(10 + w.rng.IntN(90)),
		}
	case KindSmoke:
		life := params.SmokeLifetimeMin + w.rng.IntN(params.SmokeLifetimeMax-params.SmokeLifetimeMin+1)
		return &Smoke{body: b, lifetime: life, max: life, dir: w.randomDir()}
	case KindWood:
		return &Wood{body: b, resistance: params.WoodBurnResistance}
	case KindStasis:
		return &Stasis{body: b}
	case KindEraser:
		return &Eraser{body: b}
	default:
		return &Solid{body: b}
	}
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		c, err := ConfigFrom(cfg["config"], cfg)
		if err != nil {
			slog.Warn("sand config", "error", err)
			c = FromMap(cfg)
		}
		return NewWithConfig(c)
	})
}
