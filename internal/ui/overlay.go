//go:build ebiten

package ui

import (
	"image/color"

	"mad-sand/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// LayerSource exposes the raw layer grid and the debug colors for its codes.
type LayerSource interface {
	Cells() []uint8
	Palette() []color.RGBA
}

const overlayAlpha = 0.6

// Overlay draws the raw layer grid over the rendered cells, so drift between
// the grid and the cells shows up as mismatched colors. L toggles it.
type Overlay struct {
	src     LayerSource
	painter *render.GridPainter
	scale   int
	visible bool
}

// NewOverlay constructs an overlay for a w*h grid.
func NewOverlay(src LayerSource, w, h, scale int) *Overlay {
	return &Overlay{src: src, painter: render.NewGridPainter(w, h), scale: scale}
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o != nil && o.visible }

// Update handles the toggle key.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		o.visible = !o.visible
	}
}

// Draw renders the layer grid when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.Visible() {
		return
	}
	o.painter.BlitPalette(screen, o.src.Cells(), o.src.Palette(), o.scale, overlayAlpha)
}
