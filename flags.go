package main

import "flag"

// Command-line flags that control optional rendering, simulation, and runtime
// behavior. Presentation defaults (window size, title, startup view toggles)
// live in the YAML settings file; flags cover per-run switches.
var (
	// configFlag points at an optional YAML settings file layered over the
	// embedded defaults.
	configFlag = flag.String("config", "", "path to a YAML settings file")

	// debugFlag enables the FPS and simulation overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and simulation timing overlay")

	// openclFlag requests the OpenCL particle advection solver (requires a
	// binary built with -tags opencl).
	openclFlag = flag.Bool("opencl", false, "advect particles with the OpenCL solver")

	// noiseFieldFlag seeds the startup field from curl noise instead of zeros.
	noiseFieldFlag = flag.Bool("noise-field", false, "seed the flow field from simplex curl noise")

	// noiseSeedFlag fixes the curl noise seed; 0 derives one from the clock.
	noiseSeedFlag = flag.Int64("noise-seed", 0, "seed for -noise-field (0 = time-based)")

	// telemetryFlag overrides the telemetry CSV path from the settings file.
	telemetryFlag = flag.String("telemetry", "", "write per-second frame stats to this CSV file")

	// workersFlag bounds the particle advection worker count; 0 uses all CPUs.
	workersFlag = flag.Int("workers", 0, "particle advection worker goroutines (0 = NumCPU)")

	// recordDefaultPGO triggers a scripted brush stroke to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "comb along a scripted stroke for 15s while capturing default.pgo")
)
