package main

import (
	"math"
	"math/rand"
	"testing"
)

// randomField fills every cell with a vector of magnitude below 1.
func randomField(width, height int, rng *rand.Rand) *flowField {
	f := newFlowField(width, height)
	for i := range f.cells {
		angle := rng.Float64() * 2 * math.Pi
		mag := rng.Float32()
		f.cells[i] = vec2{float32(math.Cos(angle)), float32(math.Sin(angle))}.scale(mag)
	}
	return f
}

func cloneField(f *flowField) *flowField {
	c := newFlowField(f.width, f.height)
	copy(c.cells, f.cells)
	return c
}

func TestSampleWrapsAroundTorus(t *testing.T) {
	f := newFlowField(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			f.set(x, y, vec2{float32(x), float32(y)})
		}
	}
	positions := []vec2{{0.3, 0.7}, {0.99, 0.01}, {0, 0}, {0.5, 0.5}}
	for _, p := range positions {
		base := f.sample(p)
		if got := f.sample(p.add(vec2{1, 0})); got != base {
			t.Errorf("sample(%v + (1,0)) = %v, want %v", p, got, base)
		}
		if got := f.sample(p.add(vec2{0, 1})); got != base {
			t.Errorf("sample(%v + (0,1)) = %v, want %v", p, got, base)
		}
		if got := f.sample(p.sub(vec2{1, 1})); got != base {
			t.Errorf("sample(%v - (1,1)) = %v, want %v", p, got, base)
		}
	}
}

func TestSampleNegativePositions(t *testing.T) {
	f := newFlowField(4, 4)
	f.set(3, 2, vec2{1, -1})
	// -0.2 wraps to 0.8 on the x axis.
	if got := f.sample(vec2{-0.2, 0.6}); got != (vec2{1, -1}) {
		t.Errorf("sample(-0.2, 0.6) = %v, want (1,-1)", got)
	}
}

func TestDampenNeverIncreasesMagnitude(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := randomField(32, 32, rng)
	before := cloneField(f)
	f.dampen(vec2{0.4, 0.6}, 0.25)
	for i := range f.cells {
		if got, was := f.cells[i].length(), before.cells[i].length(); got > was+1e-6 {
			t.Fatalf("cell %d magnitude grew from %f to %f", i, was, got)
		}
	}
}

func TestDampenRelaxesCenterCell(t *testing.T) {
	f := newFlowField(16, 16)
	f.set(8, 8, vec2{0.5, 0})
	f.dampen(vec2{0.5, 0.5}, 0.1)
	got := f.at(8, 8)
	if math.Abs(float64(got.x)-0.4) > 1e-6 || got.y != 0 {
		t.Errorf("center cell = %v, want (0.4, 0)", got)
	}
}

func TestCombBoundsCellMagnitude(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	f := randomField(32, 32, rng)
	for i := 0; i < 10; i++ {
		a := vec2{rng.Float32(), rng.Float32()}
		b := vec2{rng.Float32(), rng.Float32()}
		f.comb(a, b, 0.3)
	}
	for i := range f.cells {
		if l := f.cells[i].length(); l > 1+1e-4 {
			t.Fatalf("cell %d magnitude %f exceeds bound", i, l)
		}
	}
}

func TestCombIgnoresSubThresholdStrokes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	f := randomField(16, 16, rng)
	before := cloneField(f)

	p := vec2{0.5, 0.5}
	f.comb(p, p, 0.2)
	f.comb(p, p.add(vec2{5e-5, 0}), 0.2)

	for i := range f.cells {
		if f.cells[i] != before.cells[i] {
			t.Fatalf("cell %d changed after sub-threshold strokes: %v -> %v", i, before.cells[i], f.cells[i])
		}
	}
}

func TestCombStrokeOnSmallField(t *testing.T) {
	f := newFlowField(4, 4)
	f.comb(vec2{0.1, 0.1}, vec2{0.3, 0.1}, 0.2)

	// Footprint bounding box around (0.3, 0.1) with radius 0.2: x in [1,2],
	// y in [0,1]. Cells on the footprint edge get zero weight.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			v := f.at(x, y)
			inside := x >= 1 && x <= 2 && y <= 1
			if !inside && v != (vec2{}) {
				t.Errorf("cell (%d,%d) outside footprint changed to %v", x, y, v)
			}
			if l := v.length(); l > 1+1e-6 {
				t.Errorf("cell (%d,%d) magnitude %f exceeds bound", x, y, l)
			}
		}
	}
	for _, cell := range [][2]int{{1, 0}, {1, 1}} {
		v := f.at(cell[0], cell[1])
		if v.x <= 0 {
			t.Errorf("cell %v should point along +x, got %v", cell, v)
		}
		if v.y != 0 {
			t.Errorf("cell %v picked up a vertical component: %v", cell, v)
		}
	}
}

// TestBrushFootprintMatchesFullScan cross-checks the bounding-box loops
// against a naive full-grid implementation of the same operators.
func TestBrushFootprintMatchesFullScan(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	bounded := randomField(16, 16, rng)
	reference := cloneField(bounded)

	center := vec2{0.3, 0.8}
	radius := float32(0.25)
	bounded.dampen(center, radius)
	fullScanDampen(reference, center, radius)

	for i := range bounded.cells {
		if bounded.cells[i] != reference.cells[i] {
			t.Fatalf("cell %d diverged: bounded=%v full=%v", i, bounded.cells[i], reference.cells[i])
		}
	}
}

// fullScanDampen is the straightforward whole-grid rendition of dampen used
// only as a test oracle.
func fullScanDampen(f *flowField, center vec2, radius float32) {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			p := vec2{float32(x) / float32(f.width), float32(y) / float32(f.height)}
			absDelta := p.sub(center).abs()
			if absDelta.x > radius || absDelta.y > radius {
				continue
			}
			forceLen := absDelta.scale(1 / radius).length()
			if forceLen > 1 {
				forceLen = 1
			}
			v := f.at(x, y)
			damped := v.scale(dampenRetain)
			f.set(x, y, damped.add(v.sub(damped).scale(forceLen)))
		}
	}
}
