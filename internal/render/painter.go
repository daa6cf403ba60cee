//go:build ebiten

package render

import (
	"image/color"

	"mad-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter owns a single W*H image that grid state is uploaded into before
// being scaled onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// BlitRGBA lets src paint the full-color frame and draws it scaled onto dst.
func (gp *GridPainter) BlitRGBA(dst *ebiten.Image, src core.RGBAPainter, scale int) {
	src.PaintRGBA(gp.buf)
	gp.draw(dst, scale, 1)
}

// BlitPalette draws raw cell codes through palette at the given opacity.
func (gp *GridPainter) BlitPalette(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int, alpha float32) {
	if len(cells) != gp.w*gp.h {
		return
	}
	FillPaletteRGBA(gp.buf, cells, palette)
	gp.draw(dst, scale, alpha)
}

func (gp *GridPainter) draw(dst *ebiten.Image, scale int, alpha float32) {
	if scale <= 0 {
		scale = 1
	}
	gp.img.WritePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
