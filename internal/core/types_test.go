package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupUnknownSim(t *testing.T) {
	_, err := Lookup("definitely-not-registered")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSim))
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	assert.Len(t, Sims(), before)
}

func TestParameterSnapshotFind(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	p, ok := snap.Find("y")
	require.True(t, ok)
	assert.Equal(t, "2", p.Value)

	_, ok = snap.Find("z")
	assert.False(t, ok)

	ctrl := ParameterControl{Min: 0, Max: 1, HasMin: true, HasMax: true}
	assert.Equal(t, 1.0, ctrl.Clamp(3))
	assert.Equal(t, 0.0, ctrl.Clamp(-1))
	assert.Equal(t, 0.5, ctrl.Clamp(0.5))
}
