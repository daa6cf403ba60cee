package app

import "image/color"

// grayscale draws sims without their own painter: 0 black, anything else
// white.
var grayscale = func() []color.RGBA {
	out := make([]color.RGBA, 256)
	for i := 1; i < len(out); i++ {
		out[i] = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	out[0] = color.RGBA{A: 255}
	return out
}()
