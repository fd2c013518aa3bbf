package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// viewerAmplitudeScale maps field amplitude to full pixel intensity. The
// source wavelet peaks near 0.81, so the initial pulse renders close to
// white and spreading wavefronts fade with distance.
const viewerAmplitudeScale = 1.0

// Draw renders the previous-timestep buffer, which always holds the newest
// completed timestep, as grayscale amplitude.
func (g *viewerGame) Draw(screen *ebiten.Image) {
	size := g.field.rows * g.field.cols
	if len(g.pixels) != size*4 {
		g.pixels = make([]byte, size*4)
	}
	for i, v := range g.field.prev {
		if v < 0 {
			v = -v
		}
		v /= viewerAmplitudeScale
		if v > 1 {
			v = 1
		}
		intensity := byte(v * 255)
		base := i * 4
		g.pixels[base] = intensity
		g.pixels[base+1] = intensity
		g.pixels[base+2] = intensity
		g.pixels[base+3] = 255
	}
	screen.WritePixels(g.pixels)
}
