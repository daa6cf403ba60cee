package sand

import (
	"fmt"

	"mad-sand/internal/core"
)

// Layer is the material class occupying a grid coordinate. It carries no
// identity: two water cells are indistinguishable by layer alone.
type Layer uint8

const (
	LayerEmpty Layer = iota
	LayerSolid
	LayerSand
	LayerWater
	LayerFire
	LayerSmoke

	layerCount
)

// LayerBoundary is what the sampler reports for coordinates outside the grid.
const LayerBoundary = Layer(core.OutOfBounds)

var layerNames = [layerCount]string{"empty", "solid", "sand", "water", "fire", "smoke"}

func (l Layer) String() string {
	if l == LayerBoundary {
		return "boundary"
	}
	if l < layerCount {
		return layerNames[l]
	}
	return fmt.Sprintf("layer(%d)", uint8(l))
}

// LayerSet is a bitmask of layers. The boundary sentinel is never a member,
// so every movement rule treats the edge of the grid as blocked.
type LayerSet uint16

// Layers builds a set from the given layers.
func Layers(ls ...Layer) LayerSet {
	var s LayerSet
	for _, l := range ls {
		if l < layerCount {
			s |= 1 << l
		}
	}
	return s
}

// Has reports whether l is in the set.
func (s LayerSet) Has(l Layer) bool {
	if l >= layerCount {
		return false
	}
	return s&(1<<l) != 0
}

// All reports whether every listed layer is in the set.
func (s LayerSet) All(ls ...Layer) bool {
	for _, l := range ls {
		if !s.Has(l) {
			return false
		}
	}
	return true
}
