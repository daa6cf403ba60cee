package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boxedFireUnderWood builds a fire at (2,3) with wood directly above it and
// plain solids on every other side it could move to.
func boxedFireUnderWood(t *testing.T) (*World, *Fire, *Wood) {
	t.Helper()
	w := newTestWorld(t, 5, 5, nil)
	for _, p := range []Point{{1, 2}, {3, 2}, {1, 3}, {3, 3}} {
		mustSpawn(t, w, KindSolid, p.X, p.Y)
	}
	wood := mustSpawn(t, w, KindWood, 2, 2).(*Wood)
	fire := mustSpawn(t, w, KindFire, 2, 3).(*Fire)
	require.Equal(t, 25, wood.Resistance())
	return w, fire, wood
}

func TestFireBurnsThroughWoodAfter26Ticks(t *testing.T) {
	w, fire, wood := boxedFireUnderWood(t)

	for tick := 1; tick <= 25; tick++ {
		w.Step()
		require.True(t, wood.Alive(), "tick %d", tick)
		require.Equal(t, 25-tick, wood.Resistance(), "tick %d", tick)
		require.Equal(t, Point{X: 2, Y: 3}, fire.Pos(), "fire stays boxed in")
	}
	require.Equal(t, 1, w.Registry().Len(KindWood))

	w.Step()

	assert.False(t, wood.Alive())
	assert.Equal(t, 0, w.Registry().Len(KindWood))
	assert.Equal(t, 2, w.Registry().Len(KindFire))
	assert.Equal(t, 3, w.Registry().Len(KindSmoke))

	spread := w.Registry().At(KindFire, Point{X: 2, Y: 2})
	require.NotNil(t, spread)
	assert.Equal(t, w.Config().Params.BurntFireLifetime, spread.(*Fire).Lifetime())
	assert.Equal(t, LayerFire, layerAt(w, 2, 2))
	for x := 1; x <= 3; x++ {
		assert.Equal(t, LayerSmoke, layerAt(w, x, 1), "smoke at x=%d", x)
		assert.NotNil(t, w.Registry().At(KindSmoke, Point{X: x, Y: 1}))
	}
}

func TestFireRefuelsWhileBurning(t *testing.T) {
	w, fire, _ := boxedFireUnderWood(t)
	start := fire.Lifetime()

	for i := 0; i < 10; i++ {
		w.Step()
	}
	assert.Equal(t, start, fire.Lifetime(), "one wood neighbour offsets the per-tick burn")
}

func TestFireLifetimeDecreasesUntilRemoved(t *testing.T) {
	w := newTestWorld(t, 3, 3, func(p *Params) { p.FireLifetime = 5 })
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 1 {
				continue
			}
			mustSpawn(t, w, KindSolid, x, y)
		}
	}
	fire := mustSpawn(t, w, KindFire, 1, 1).(*Fire)

	last := fire.Lifetime()
	for tick := 1; tick <= 4; tick++ {
		w.Step()
		require.True(t, fire.Alive(), "tick %d", tick)
		require.Less(t, fire.Lifetime(), last)
		last = fire.Lifetime()
	}

	w.Step()
	assert.False(t, fire.Alive())
	assert.Equal(t, 0, w.Registry().Len(KindFire))
	assert.Equal(t, LayerEmpty, layerAt(w, 1, 1))
	assert.False(t, w.Registry().Remove(fire), "a cell is removed only once")
}

func TestFireRemovedAtTopEdge(t *testing.T) {
	w := newTestWorld(t, 3, 3, nil)
	fire := mustSpawn(t, w, KindFire, 1, 0)

	w.Step()

	assert.False(t, fire.Alive())
	assert.Equal(t, LayerEmpty, layerAt(w, 1, 0))
}

func TestFireExtinguishedByWater(t *testing.T) {
	w := newTestWorld(t, 3, 3, nil)
	fire := mustSpawn(t, w, KindFire, 1, 2)
	w.Grid().Set(1, 2, uint8(LayerWater))

	w.Step()

	assert.False(t, fire.Alive())
	assert.Equal(t, 0, w.Registry().Len(KindFire))
}

func TestFireRises(t *testing.T) {
	w := newTestWorld(t, 3, 4, func(p *Params) { p.FireClingChance = 0 })
	mustSpawn(t, w, KindSolid, 0, 3)
	mustSpawn(t, w, KindSolid, 2, 3)
	fire := mustSpawn(t, w, KindFire, 1, 3)

	w.Step()

	assert.Equal(t, Point{X: 1, Y: 2}, fire.Pos())
	assert.Equal(t, LayerFire, layerAt(w, 1, 2))
	assert.Equal(t, LayerEmpty, layerAt(w, 1, 3))
}

func TestTwoFiresNeverDestroyWoodTwice(t *testing.T) {
	w := newTestWorld(t, 5, 5, func(p *Params) { p.WoodBurnResistance = 0 })
	for _, p := range []Point{{0, 2}, {0, 3}, {4, 2}, {4, 3}, {2, 3}, {1, 2}, {3, 2}} {
		mustSpawn(t, w, KindSolid, p.X, p.Y)
	}
	mustSpawn(t, w, KindWood, 2, 2)
	mustSpawn(t, w, KindFire, 1, 3)
	mustSpawn(t, w, KindFire, 3, 3)

	w.Step()

	assert.Equal(t, 0, w.Registry().Len(KindWood))
	assert.Equal(t, 3, w.Registry().Len(KindFire), "burnt wood spawns exactly one fire")
	assert.Equal(t, 3, w.Registry().Len(KindSmoke))
}

func TestFireClingsToOrthogonalWood(t *testing.T) {
	for _, wood := range []Point{{X: 2, Y: 4}, {X: 4, Y: 4}, {X: 3, Y: 3}} {
		t.Run(wood.String(), func(t *testing.T) {
			w := newTestWorld(t, 7, 7, func(p *Params) { p.FireClingChance = 1 })
			mustSpawn(t, w, KindWood, wood.X, wood.Y)
			f := mustSpawn(t, w, KindFire, 3, 4).(*Fire)

			for i := 0; i < 10; i++ {
				w.Step()
				require.Equal(t, Point{X: 3, Y: 4}, f.Pos(), "tick %d", i+1)
			}
			assert.Equal(t, 1.0, f.cling)
		})
	}
}

func TestFireRisesPastDiagonalWood(t *testing.T) {
	w := newTestWorld(t, 7, 7, func(p *Params) { p.FireClingChance = 1 })
	mustSpawn(t, w, KindWood, 4, 3)
	f := mustSpawn(t, w, KindFire, 3, 4).(*Fire)

	w.Step()

	assert.Equal(t, 0.0, f.cling)
	assert.Equal(t, 3, f.Pos().Y)
	assert.Contains(t, []int{2, 3}, f.Pos().X, "up-right is wood, so up-left or up")
	assert.Equal(t, LayerEmpty, layerAt(w, 3, 4))
}
