package render

import "image/color"

// FillPaletteRGBA converts layer codes into RGBA pixels using a palette. Codes
// past the end of the palette, including the off-grid sentinel, are written
// transparent. An empty palette clears the buffer.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	n := len(cells)
	if len(buf) < 4*n {
		n = len(buf) / 4
	}
	for i := 0; i < n; i++ {
		base := i * 4
		idx := int(cells[i])
		if idx >= len(palette) {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
