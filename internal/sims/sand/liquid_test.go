package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaterFlowsSidewaysOnFloor(t *testing.T) {
	w := newTestWorld(t, 5, 2, nil)
	for x := 0; x < 5; x++ {
		mustSpawn(t, w, KindSolid, x, 1)
	}
	wt := mustSpawn(t, w, KindWater, 2, 0).(*Water)
	dir := wt.dir

	w.Step()

	assert.Equal(t, Point{X: 2 + dir, Y: 0}, wt.Pos())
	assert.Equal(t, LayerEmpty, layerAt(w, 2, 0))
}

func TestWaterTurnsAroundWhenBlocked(t *testing.T) {
	w := newTestWorld(t, 3, 1, nil)
	mustSpawn(t, w, KindSolid, 0, 0)
	mustSpawn(t, w, KindSolid, 2, 0)
	wt := mustSpawn(t, w, KindWater, 1, 0).(*Water)
	dir := wt.dir

	w.Step()
	assert.Equal(t, -dir, wt.dir)
	w.Step()
	assert.Equal(t, dir, wt.dir)
	assert.Equal(t, Point{X: 1, Y: 0}, wt.Pos())
}

func TestWaterTakesOpenSideWhenHeldSideBlocked(t *testing.T) {
	w := newTestWorld(t, 3, 1, nil)
	wt := mustSpawn(t, w, KindWater, 1, 0).(*Water)
	blocked := 1 + wt.dir
	mustSpawn(t, w, KindSolid, blocked, 0)

	w.Step()

	assert.Equal(t, Point{X: 2 - blocked, Y: 0}, wt.Pos())
	assert.Equal(t, 1-blocked, wt.dir)
}

func TestWaterFallsIntoFireSlot(t *testing.T) {
	w := newTestWorld(t, 1, 2, nil)
	wt := mustSpawn(t, w, KindWater, 0, 0)
	fire := mustSpawn(t, w, KindFire, 0, 1)

	w.Step()

	assert.Equal(t, Point{X: 0, Y: 1}, wt.Pos())
	assert.False(t, fire.Alive(), "fire under water goes out")
}

func TestAcidMovesOnItsCadence(t *testing.T) {
	w := newTestWorld(t, 1, 10, func(p *Params) { p.AcidSlowness = 2 })
	a := mustSpawn(t, w, KindAcid, 0, 0)
	assert.Equal(t, LayerWater, layerAt(w, 0, 0))

	want := []int{1, 1, 1, 2, 2, 2, 3}
	for i, y := range want {
		w.Step()
		require.Equal(t, y, a.Pos().Y, "tick %d", i+1)
	}
}

func TestAcidDissolvesWoodIntoSmoke(t *testing.T) {
	w := newTestWorld(t, 3, 3, func(p *Params) { p.WoodBurnResistance = 2 })
	wood := mustSpawn(t, w, KindWood, 0, 2).(*Wood)
	mustSpawn(t, w, KindSolid, 2, 2)
	a := mustSpawn(t, w, KindAcid, 1, 2)

	w.Step()
	w.Step()
	assert.True(t, wood.Alive())
	assert.Equal(t, 0, wood.Resistance())

	w.Step()
	assert.False(t, wood.Alive())
	assert.Equal(t, Point{X: 1, Y: 2}, a.Pos())
	require.Equal(t, 1, w.Registry().Len(KindSmoke))
	assert.NotNil(t, w.Registry().At(KindSmoke, Point{X: 0, Y: 2}))
	assert.Equal(t, LayerSmoke, layerAt(w, 0, 2))
}

func TestAcidIgnoresDiagonalWood(t *testing.T) {
	w := newTestWorld(t, 3, 3, func(p *Params) { p.WoodBurnResistance = 0 })
	wood := mustSpawn(t, w, KindWood, 0, 1)
	mustSpawn(t, w, KindSolid, 0, 2)
	mustSpawn(t, w, KindSolid, 2, 2)
	mustSpawn(t, w, KindAcid, 1, 2)

	w.Step()
	assert.True(t, wood.Alive())
}

func TestLiquidsFallDiagonally(t *testing.T) {
	for _, k := range []Kind{KindWater, KindAcid} {
		t.Run(k.String(), func(t *testing.T) {
			w := newTestWorld(t, 3, 2, nil)
			mustSpawn(t, w, KindSolid, 1, 1)
			c := mustSpawn(t, w, k, 1, 0)

			w.Step()

			pos := c.Pos()
			assert.Equal(t, 1, pos.Y)
			assert.Contains(t, []int{0, 2}, pos.X)
			assert.Equal(t, LayerWater, w.LayerAt(pos))
			assert.Equal(t, LayerEmpty, layerAt(w, 1, 0))
		})
	}
}

func TestLiquidDiagonalNeedsOpenSide(t *testing.T) {
	w := newTestWorld(t, 3, 2, nil)
	mustSpawn(t, w, KindSolid, 1, 1)
	mustSpawn(t, w, KindSolid, 0, 0)
	wt := mustSpawn(t, w, KindWater, 1, 0)

	w.Step()

	assert.Equal(t, Point{X: 2, Y: 1}, wt.Pos(), "down-left is open but left is not")
	assert.Equal(t, LayerEmpty, layerAt(w, 0, 1))
}
