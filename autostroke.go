package main

import (
	"math"
	"math/rand"
	"time"
)

// autoStroke synthesizes pointer input for a scripted comb stroke: the
// pointer sweeps a slowly breathing circle with the primary button held.
// It is used to exercise the brush and particle paths while recording a
// default CPU profile.
type autoStroke struct {
	angle    float64
	phase    float64
	deadline time.Time
	rng      *rand.Rand
}

// newAutoStroke schedules a scripted stroke for the given duration.
func newAutoStroke(rng *rand.Rand, duration time.Duration) *autoStroke {
	return &autoStroke{
		angle:    rng.Float64() * 2 * math.Pi,
		deadline: time.Now().Add(duration),
		rng:      rng,
	}
}

// active reports whether the scripted stroke is still running.
func (a *autoStroke) active() bool {
	return time.Now().Before(a.deadline)
}

// input produces the next synthetic frame of pointer state in window pixels.
func (a *autoStroke) input(width, height float64, nowMicros int64) frameInput {
	a.angle += autoStrokeTurnRate
	a.phase += autoStrokeTurnRate * 0.31
	orbit := 0.3 + 0.12*math.Sin(a.phase)
	cx := (0.5 + orbit*math.Cos(a.angle)) * width
	cy := (0.5 + orbit*math.Sin(a.angle)) * height
	return frameInput{
		cursorX:   cx,
		cursorY:   cy,
		width:     width,
		height:    height,
		primary:   true,
		nowMicros: nowMicros,
	}
}
