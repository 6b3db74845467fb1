package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
)

// frameStatRow is one aggregated telemetry window serialized to CSV.
type frameStatRow struct {
	Frame     int     `csv:"frame"`
	FPS       float64 `csv:"fps"`
	TPS       float64 `csv:"tps"`
	SimMillis float64 `csv:"sim_ms"`
	Reseeds   int     `csv:"reseeds"`
	Combs     int     `csv:"combs"`
	Dampens   int     `csv:"dampens"`
}

// telemetryRecorder accumulates per-frame simulation stats and folds them
// into one CSV row per aggregation window. Rows are written once at shutdown.
type telemetryRecorder struct {
	path string
	rows []frameStatRow

	frames      int
	windowSim   time.Duration
	windowRes   int
	windowCombs int
	windowDamps int
}

func newTelemetryRecorder(path string) *telemetryRecorder {
	return &telemetryRecorder{path: path}
}

// observe folds one frame into the current window and emits a row when the
// window closes.
func (t *telemetryRecorder) observe(stats frameStats, simDuration time.Duration, fps, tps float64) {
	t.frames++
	t.windowSim += simDuration
	t.windowRes += stats.reseeds
	if stats.combed {
		t.windowCombs++
	}
	if stats.dampened {
		t.windowDamps++
	}
	if t.frames%telemetryFlushFrames != 0 {
		return
	}
	t.rows = append(t.rows, frameStatRow{
		Frame:     t.frames,
		FPS:       fps,
		TPS:       tps,
		SimMillis: t.windowSim.Seconds() * 1000 / telemetryFlushFrames,
		Reseeds:   t.windowRes,
		Combs:     t.windowCombs,
		Dampens:   t.windowDamps,
	})
	t.windowSim = 0
	t.windowRes = 0
	t.windowCombs = 0
	t.windowDamps = 0
}

// close writes the accumulated rows to the CSV file.
func (t *telemetryRecorder) close() error {
	f, err := os.Create(t.path)
	if err != nil {
		return fmt.Errorf("creating telemetry file: %w", err)
	}
	defer f.Close()
	if err := gocsv.MarshalFile(&t.rows, f); err != nil {
		return fmt.Errorf("writing telemetry rows: %w", err)
	}
	return nil
}
