package main

import (
	"math/rand"
	"runtime"
	"sync"
)

// particleSystem owns the advected particle population as parallel slices
// indexed by particle id. Slots are reused forever: an expired particle is
// reseeded in place rather than destroyed.
type particleSystem struct {
	pos  []vec2
	vel  []vec2
	life []uint32

	workers int
}

// newParticleSystem allocates count particles at uniform-random positions
// with zero velocity and zero lifetime, so every particle reseeds on the
// first step.
func newParticleSystem(count int, rng *rand.Rand) *particleSystem {
	ps := &particleSystem{
		pos:     make([]vec2, count),
		vel:     make([]vec2, count),
		life:    make([]uint32, count),
		workers: runtime.NumCPU(),
	}
	for i := range ps.pos {
		ps.pos[i] = vec2{rng.Float32(), rng.Float32()}
	}
	return ps
}

// step advances every particle one frame and returns the number of particles
// reseeded. Advection runs first (position before velocity, so a particle
// coasts on the previous step's velocity), then expired particles are
// reseeded. The two phases keep rng draws in particle-index order while the
// advection loop is free to run sharded.
func (ps *particleSystem) step(field *flowField, rng *rand.Rand) int {
	ps.advect(field)
	return ps.reseedExpired(field, rng)
}

// advect integrates positions and velocities against the sampled field.
// Forces apply only to particles strictly inside the unit square; sampling
// itself never goes out of bounds thanks to wraparound.
func (ps *particleSystem) advect(field *flowField) {
	n := len(ps.pos)
	if n < parallelThreshold || ps.workers < 2 {
		ps.advectRange(field, 0, n)
		return
	}
	chunk := (n + ps.workers - 1) / ps.workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			ps.advectRange(field, start, end)
		}(start, end)
	}
	wg.Wait()
}

// advectRange applies the per-particle integration to ids in [start, end).
// Each particle's update is independent, so any sharding yields results
// identical to a sequential pass.
func (ps *particleSystem) advectRange(field *flowField, start, end int) {
	for i := start; i < end; i++ {
		var force vec2
		p := ps.pos[i]
		if p.x > 0 && p.x < 1 && p.y > 0 && p.y < 1 {
			force = field.sample(p).scale(forceScale)
		}
		ps.pos[i] = p.add(ps.vel[i])
		ps.vel[i] = ps.vel[i].scale(friction).add(force)
	}
}

// reseedExpired rerolls every particle whose lifetime reached zero: new
// uniform-random position, velocity seeded from the field at that position,
// and a fresh lifetime in [0, particleMaxLife). Live particles just age.
func (ps *particleSystem) reseedExpired(field *flowField, rng *rand.Rand) int {
	reseeds := 0
	for i := range ps.life {
		if ps.life[i] == 0 {
			p := vec2{rng.Float32(), rng.Float32()}
			ps.pos[i] = p
			ps.vel[i] = field.sample(p).scale(forceScale)
			ps.life[i] = uint32(rng.Intn(particleMaxLife))
			reseeds++
		} else {
			ps.life[i]--
		}
	}
	return reseeds
}
