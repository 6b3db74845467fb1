package main

import "time"

// Simulation and rendering configuration constants used throughout the
// application. These values define the field resolution, particle population,
// brush behavior, and presentation defaults for the flow-field toy.
const (
	fieldW, fieldH = 512, 512
	particleCount  = 150000

	// forceScale converts a sampled field vector into a per-step velocity
	// contribution; friction is the velocity retained across a step.
	forceScale      = 0.002
	friction        = 0.1
	particleMaxLife = 80

	// strokeThreshold ignores sub-pixel pointer jitter; strokeExponent and
	// combGainNumerator are opaque tuning constants for the comb brush
	// (weight = strokeLen^strokeExponent * combGainNumerator / (4*radius)).
	strokeThreshold   = 1e-4
	strokeExponent    = 1.8
	combGainNumerator = 150.0
	dampenRetain      = 0.8

	minBrushRadius     = 0.01
	maxBrushRadius     = 0.5
	defaultBrushRadius = 0.1
	wheelRadiusStep    = 0.0001
	wheelNotchCounts   = 120
	brushFadeMicros    = 1_000_000

	brushOutlineSegments = 60
	particleTailScale    = 6.0
	particleAlphaStart   = 115
	particleSaturation   = 0.2
	particleBrightness   = 0.3
	fieldLineAlpha       = 100
	fieldLineMaxCells    = 2.0
	fieldLineGain        = 20.0

	defaultWindowW = 1024
	defaultWindowH = 1024

	// linesPerBatch keeps each DrawTriangles call below the uint16 index
	// ceiling (4 vertices and 6 indices per line quad).
	linesPerBatch     = 10000
	parallelThreshold = 4096

	noiseFrequency = 3.0
	noiseEpsilon   = 1e-3
	noiseGain      = 0.35

	telemetryFlushFrames = 60
	pgoRecordDuration    = 15 * time.Second
	autoStrokeTurnRate   = 0.035
)
