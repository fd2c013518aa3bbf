package main

// Simulation constants for the isotropic wave equation scheme: 2nd order in
// space, 2nd order in time, no damping or boundary absorption. halfLength is
// the stencil radius; a halo of that width at every grid edge is excluded
// from updates and from verification.
const (
	dt           = 0.002
	dxy          = 20.0
	halfLength   = 1
	waveVelocity = 1500.0

	// defaultDelta is the per-point absolute difference allowed when
	// comparing the accelerated and reference wavefields.
	defaultDelta = 0.01

	windowScale         = 2
	viewerStepsPerFrame = 4
)

// dtDIVdxy is (Δt)²/(Δxy)², the constant factor applied to the Laplacian in
// every stencil update. It is passed explicitly into the drivers so the
// numerical core carries no hidden state.
const dtDIVdxy = float32((dt * dt) / (dxy * dxy))

// sourceWavelet is the fixed 12-coefficient pulse stamped into the
// previous-timestep field at startup as the initial disturbance. Index 0 is
// the strongest coefficient and lands at the grid center.
var sourceWavelet = [12]float32{
	0.016387336, -0.041464937, -0.067372555, 0.386110067,
	0.812723635, 0.416998396, 0.076488599, -0.059434419,
	0.023680172, 0.005611435, 0.001823209, -0.000720549,
}
