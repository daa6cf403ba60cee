package sand

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyQueuesTools(t *testing.T) {
	w := newTestWorld(t, 3, 3, nil)

	require.NoError(t, w.Apply("wood", 0, 2))
	require.NoError(t, w.Apply("destroy", 2, 2))
	assert.Equal(t, 0, w.Registry().Total(), "tools act on the next tick")

	w.Step()
	assert.Equal(t, 1, w.Registry().Len(KindWood))
	assert.Equal(t, 1, w.Registry().Len(KindEraser))

	require.NoError(t, w.Apply(ToolEmpty, 0, 2))
	w.Step()
	assert.Equal(t, 0, w.Registry().Len(KindWood))
	assert.Equal(t, LayerEmpty, layerAt(w, 0, 2))

	require.NoError(t, w.Apply(ToolExamine, 1, 1))
}

func TestApplyRejectsBadInput(t *testing.T) {
	w := newTestWorld(t, 3, 3, nil)
	assert.ErrorIs(t, w.Apply("sand", 3, 0), ErrOutOfBounds)
	assert.ErrorIs(t, w.Apply("lava", 0, 0), ErrUnknownKind)
}

func TestToolsListsEveryMaterial(t *testing.T) {
	w := newTestWorld(t, 1, 1, nil)
	tools := w.Tools()
	for _, k := range Kinds() {
		assert.Contains(t, tools, k.String())
	}
	assert.Equal(t, ToolEmpty, tools[len(tools)-1])
}

func TestExamineReadsRawLayer(t *testing.T) {
	w := newTestWorld(t, 3, 3, nil)
	var logs bytes.Buffer
	w.SetLogger(slog.New(slog.NewTextHandler(&logs, nil)))
	mustSpawn(t, w, KindWood, 1, 1)
	mustSpawn(t, w, KindAcid, 0, 2)
	mustSpawn(t, w, KindEraser, 2, 2)

	assert.Equal(t, LayerSolid, w.Examine(Point{X: 1, Y: 1}), "wood sits on the solid layer")
	assert.Equal(t, LayerWater, w.Examine(Point{X: 0, Y: 2}))
	assert.Equal(t, LayerEmpty, w.Examine(Point{X: 2, Y: 2}), "erasers leave no footprint")
	assert.Equal(t, LayerBoundary, w.Examine(Point{X: -1, Y: 0}))

	w.Grid().Set(2, 0, uint8(LayerFire))
	assert.Equal(t, LayerFire, w.Examine(Point{X: 2, Y: 0}), "reads the grid, not the registry")

	logs.Reset()
	require.NoError(t, w.Apply(ToolExamine, 1, 1))
	assert.Contains(t, logs.String(), "layer=solid")
	assert.Equal(t, 3, w.Registry().Total(), "examining changes nothing")
}
