package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// viewerGame animates the wavefield in a window. It drives the same
// accelerated solver and stencil as the verification pipeline; only the
// presentation differs. Press R to restamp the source wavelet.
type viewerGame struct {
	field  *waveField
	solver waveSolver
	coeff  float32
	pixels []byte
}

// Update advances the simulation by a fixed number of timesteps per frame.
func (g *viewerGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		g.field.initialize()
	}
	return g.solver.Step(g.field, g.coeff, viewerStepsPerFrame)
}

// Layout reports the logical screen size used by Ebiten.
func (g *viewerGame) Layout(_, _ int) (int, int) {
	return g.field.cols, g.field.rows
}

// runViewer opens a window and animates wave propagation until the window
// is closed.
func runViewer(rows, cols int, solver waveSolver) error {
	field := newWaveField(rows, cols)
	field.initialize()
	g := &viewerGame{
		field:  field,
		solver: solver,
		coeff:  dtDIVdxy,
	}
	ebiten.SetWindowSize(cols*windowScale, rows*windowScale)
	ebiten.SetWindowTitle(fmt.Sprintf("iso2dfd %dx%d (%s)", rows, cols, solver.DeviceName()))
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
