package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// viewState holds the presentation toggles for the three renderable layers.
type viewState struct {
	particles bool
	field     bool
	brush     bool
}

// Game adapts the simulation to ebiten: it polls input, drives one
// simulation step per tick, and draws the resulting render description.
type Game struct {
	sim  *simulation
	view viewState
	desc renderDescription

	width, height int
	wheelCounter  int
	startTime     time.Time

	lastSimDuration time.Duration
	telemetry       *telemetryRecorder

	auto        *autoStroke
	stopProfile func()

	verts   []ebiten.Vertex
	indices []uint16
}

// newGame constructs a fully initialized Game from the loaded settings and
// the parsed flags.
func newGame(cfg *settings, rng *rand.Rand) *Game {
	g := &Game{
		sim: newSimulation(rng),
		view: viewState{
			particles: cfg.View.Particles,
			field:     cfg.View.Field,
			brush:     cfg.View.Brush,
		},
		width:     cfg.Screen.Width,
		height:    cfg.Screen.Height,
		startTime: time.Now(),
	}

	if *workersFlag > 0 {
		g.sim.particles.workers = *workersFlag
	}

	if *noiseFieldFlag {
		seed := *noiseSeedFlag
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		seedNoiseField(g.sim.field, seed)
		log.Printf("Seeded flow field from curl noise (seed %d)", seed)
	}

	if *openclFlag {
		solver, err := newOpenCLParticleSolver(fieldW, fieldH, particleCount)
		if err != nil {
			log.Fatalf("OpenCL initialization failed: %v", err)
		}
		log.Printf("OpenCL solver enabled (device: %s)", solver.DeviceName())
		g.sim.gpu = solver
	}

	telemetryPath := cfg.Telemetry.Path
	if *telemetryFlag != "" {
		telemetryPath = *telemetryFlag
	}
	if telemetryPath != "" {
		g.telemetry = newTelemetryRecorder(telemetryPath)
		log.Printf("Recording frame stats to %s", telemetryPath)
	}

	if *recordDefaultPGO {
		stop, err := startProfileRecording("default.pgo")
		if err != nil {
			log.Fatalf("starting profile recording: %v", err)
		}
		g.stopProfile = stop
		g.auto = newAutoStroke(rng, pgoRecordDuration)
		log.Printf("Recording default.pgo for %s while combing a scripted stroke", pgoRecordDuration)
	}

	return g
}

// nowMicros reads the monotonic frame clock in microseconds.
func (g *Game) nowMicros() int64 {
	return time.Since(g.startTime).Microseconds()
}

// Update polls input, advances the simulation one step, and feeds the
// telemetry recorder.
func (g *Game) Update() error {
	g.handleViewToggles()

	in := g.readInput()
	if g.auto != nil {
		if g.auto.active() {
			in = g.auto.input(float64(g.width), float64(g.height), in.nowMicros)
		} else {
			g.finishAutoStroke()
		}
	}

	simStart := time.Now()
	if err := g.sim.step(in); err != nil {
		return err
	}
	g.lastSimDuration = time.Since(simStart)

	if g.telemetry != nil {
		g.telemetry.observe(g.sim.stats, g.lastSimDuration, ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	return nil
}

// finishAutoStroke ends the scripted stroke and closes the CPU profile.
func (g *Game) finishAutoStroke() {
	g.auto = nil
	if g.stopProfile != nil {
		g.stopProfile()
		g.stopProfile = nil
		log.Printf("Wrote default.pgo")
	}
}

// Layout reports the logical screen size; the simulation normalizes pointer
// coordinates against it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
