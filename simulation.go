package main

import (
	"math/rand"
)

// frameStats summarizes one simulation step for the debug overlay and the
// telemetry recorder.
type frameStats struct {
	reseeds  int
	combed   bool
	dampened bool
}

// simulation is the per-frame driver. It exclusively owns the flow field,
// the particle population, the brush state, and the rng; the presentation
// layer only ever hands it a frameInput and reads the render description.
type simulation struct {
	field     *flowField
	particles *particleSystem
	brush     brush
	rng       *rand.Rand

	gpu        *openCLParticleSolver
	fieldDirty bool

	stats frameStats
}

// newSimulation constructs the simulation with a zeroed field and a freshly
// seeded particle population.
func newSimulation(rng *rand.Rand) *simulation {
	return &simulation{
		field:      newFlowField(fieldW, fieldH),
		particles:  newParticleSystem(particleCount, rng),
		brush:      newBrush(),
		rng:        rng,
		fieldDirty: true,
	}
}

// step consumes one frame of input: it updates the brush, applies at most one
// brush operator to the field, then advances every particle.
func (s *simulation) step(in frameInput) error {
	moved := s.brush.update(in)

	s.stats = frameStats{}
	if s.brush.primary && moved {
		s.field.comb(s.brush.prev, s.brush.pos, s.brush.radius)
		s.fieldDirty = true
		s.stats.combed = true
	} else if s.brush.secondary {
		s.field.dampen(s.brush.pos, s.brush.radius)
		s.fieldDirty = true
		s.stats.dampened = true
	}

	if s.gpu != nil {
		if s.fieldDirty {
			if err := s.gpu.UploadField(s.field.cells); err != nil {
				return err
			}
			s.fieldDirty = false
		}
		if err := s.gpu.Advect(s.particles.pos, s.particles.vel); err != nil {
			return err
		}
		s.stats.reseeds = s.particles.reseedExpired(s.field, s.rng)
		return nil
	}

	s.stats.reseeds = s.particles.step(s.field, s.rng)
	return nil
}
