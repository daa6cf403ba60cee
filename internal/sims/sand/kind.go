package sand

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a material variant and its registry bucket.
type Kind uint8

const (
	KindFire Kind = iota
	KindSmoke
	KindAcid
	KindWater
	KindSand
	KindWood
	KindSolid
	KindEraser
	KindStasis

	kindCount
)

// ErrUnknownKind is returned when a material name or code is not recognised.
var ErrUnknownKind = errors.New("unknown material")

var kindNames = [kindCount]string{
	"fire", "smoke", "acid", "water", "sand", "wood", "solid", "eraser", "stasis",
}

// updateOrder is the bucket order of a tick. Stationary kinds are absent.
var updateOrder = [...]Kind{KindSand, KindWater, KindAcid, KindFire, KindSmoke, KindEraser}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k names a material.
func (k Kind) Valid() bool { return k < kindCount }

// Kinds lists every material kind in registry order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind maps a material name to its kind. "destroy" and "time slow" are
// accepted as older spellings of eraser and stasis.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "destroy":
		return KindEraser, nil
	case "time slow", "time_slow":
		return KindStasis, nil
	case "burn solid":
		return KindWood, nil
	}
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKind, name)
}

// layerOf is the layer a kind occupies on the grid.
func layerOf(k Kind) Layer {
	switch k {
	case KindSolid, KindWood, KindStasis:
		return LayerSolid
	case KindSand:
		return LayerSand
	case KindWater, KindAcid:
		return LayerWater
	case KindFire:
		return LayerFire
	case KindSmoke:
		return LayerSmoke
	default:
		return LayerEmpty
	}
}

// passableFor is the set of layers a kind may move into.
func passableFor(k Kind) LayerSet {
	switch k {
	case KindSand:
		return Layers(LayerEmpty, LayerSmoke, LayerFire, LayerWater)
	case KindWater, KindAcid:
		return Layers(LayerEmpty, LayerFire, LayerSmoke)
	case KindSmoke, KindFire:
		return Layers(LayerEmpty)
	default:
		return 0
	}
}
