package sand

import "image/color"

var (
	colorBackground = color.RGBA{A: 255}
	colorSolid      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorWood       = color.RGBA{R: 130, G: 70, B: 52, A: 255}
	colorStasis     = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	colorSand       = color.RGBA{R: 194, G: 178, B: 128, A: 255}
	colorAcid       = color.RGBA{R: 110, G: 230, B: 60, A: 255}
	colorEraser     = color.RGBA{R: 90, G: 24, B: 24, A: 255}
)

// Color is the visual state of c. It depends only on the cell's own state.
func Color(c Cell) color.RGBA {
	switch v := c.(type) {
	case *Solid:
		return colorSolid
	case *Wood:
		return colorWood
	case *Stasis:
		return colorStasis
	case *Sand:
		return colorSand
	case *Water:
		// deeper water is darker
		y := v.pos.Y
		return color.RGBA{R: 0, G: shade(100, y), B: shade(255, y), A: 255}
	case *Acid:
		return colorAcid
	case *Fire:
		return color.RGBA{R: 255 - v.variation, G: shade(120, int(v.variation)), B: 0, A: 255}
	case *Smoke:
		gray := uint8(40)
		if v.max > 0 && v.lifetime > 0 {
			gray += uint8(160 * v.lifetime / v.max)
		}
		return color.RGBA{R: gray, G: gray, B: gray, A: 255}
	case *Eraser:
		return colorEraser
	default:
		return colorBackground
	}
}

func shade(base, by int) uint8 {
	v := base - by
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// PaintRGBA draws every live cell into buf, a W*H RGBA image.
func (w *World) PaintRGBA(buf []byte) {
	if len(buf) < 4*w.w*w.h {
		return
	}
	for i := 0; i < w.w*w.h; i++ {
		base := i * 4
		buf[base+0] = colorBackground.R
		buf[base+1] = colorBackground.G
		buf[base+2] = colorBackground.B
		buf[base+3] = colorBackground.A
	}
	for _, k := range Kinds() {
		w.reg.Each(k, func(c Cell) bool {
			p := c.Pos()
			if !w.grid.InBounds(p.X, p.Y) {
				return true
			}
			col := Color(c)
			base := w.grid.Index(p.X, p.Y) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
			return true
		})
	}
}

var layerPalette = []color.RGBA{
	LayerEmpty: {A: 0},
	LayerSolid: {R: 255, G: 255, B: 255, A: 255},
	LayerSand:  {R: 255, G: 220, B: 0, A: 255},
	LayerWater: {R: 0, G: 120, B: 255, A: 255},
	LayerFire:  {R: 255, G: 60, B: 0, A: 255},
	LayerSmoke: {R: 150, G: 150, B: 150, A: 255},
}

// Palette maps raw layer codes to debug colors, for drawing Cells() directly.
func (w *World) Palette() []color.RGBA { return layerPalette }
