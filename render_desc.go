package main

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// lineSegment is one renderable line in pixel space with per-endpoint colors.
// Particle streaks fade to transparent at the tail end.
type lineSegment struct {
	a, b       vec2
	colA, colB color.RGBA
}

// renderDescription is the per-frame output handed to the presentation layer.
// Slices are reused across frames to avoid reallocating 150k segments.
type renderDescription struct {
	particles []lineSegment
	field     []lineSegment
	brush     []lineSegment
}

// reset empties all sequences while keeping their backing arrays.
func (d *renderDescription) reset() {
	d.particles = d.particles[:0]
	d.field = d.field[:0]
	d.brush = d.brush[:0]
}

// dirToColor derives a color from a direction: hue follows the direction
// angle (360 * atan2(x, y) / pi), saturation and brightness are supplied by
// the caller.
func dirToColor(dir vec2, saturation, brightness float64) color.RGBA {
	hue := 360 * math.Atan2(float64(dir.x), float64(dir.y)) / math.Pi
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	r, g, b := colorful.Hsv(hue, saturation, brightness).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// appendParticleLines emits one comet-tail segment per particle: the head at
// the particle's pixel position, the tail trailing opposite the scaled
// velocity, alpha fading from particleAlphaStart to zero. A velocity too
// small to span a pixel gets its vertical axis forced to -1 so the particle
// stays visible as a one-pixel streak.
func appendParticleLines(dst []lineSegment, ps *particleSystem, dims vec2) []lineSegment {
	for i := range ps.pos {
		pos := ps.pos[i].mul(dims)
		dir := ps.vel[i].mul(dims).scale(particleTailScale)
		if abs32(dir.x) < 1 && abs32(dir.y) <= 1 {
			dir.y = -1
		}
		col := dirToColor(dir.normalized(), particleSaturation, particleBrightness)
		colStart := col
		colStart.A = particleAlphaStart
		colEnd := col
		colEnd.A = 0
		dst = append(dst, lineSegment{a: pos, b: pos.sub(dir), colA: colStart, colB: colEnd})
	}
	return dst
}

// appendFieldLines emits one segment per nonzero field cell for the field
// debug view. Hue tracks the cell direction, saturation and brightness track
// its magnitude, and the drawn length is clamped to a readable range.
func appendFieldLines(dst []lineSegment, f *flowField, dims vec2) []lineSegment {
	fieldDims := vec2{float32(f.width), float32(f.height)}
	cellSize := vec2{dims.x / fieldDims.x, dims.y / fieldDims.y}
	cellHalf := cellSize.scale(0.5)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			dir := f.at(x, y)
			dirLen := dir.length()
			if dirLen < 1e-6 {
				continue
			}
			unit := dir.scale(1 / dirLen)
			col := dirToColor(unit, float64(dirLen)*0.9, math.Min(1, float64(dirLen)*5))
			drawLen := float32(math.Min(fieldLineMaxCells, float64(dirLen)*fieldLineGain))
			pos := cellHalf.add(cellSize.mul(vec2{float32(x), float32(y)}))
			end := pos.add(unit.scale(drawLen).mul(cellSize))
			colStart := col
			colStart.A = fieldLineAlpha
			colEnd := col
			colEnd.A = 0
			dst = append(dst, lineSegment{a: pos, b: end, colA: colStart, colB: colEnd})
		}
	}
	return dst
}

// appendBrushOutline approximates the brush circle with a fixed-count polygon
// in pixel space.
func appendBrushOutline(dst []lineSegment, center vec2, radius float32) []lineSegment {
	white := color.RGBA{255, 255, 255, 255}
	prev := center.add(vec2{radius, 0})
	for i := 1; i <= brushOutlineSegments; i++ {
		t := float64(i) / brushOutlineSegments * 2 * math.Pi
		next := center.add(vec2{float32(math.Cos(t)), float32(math.Sin(t))}.scale(radius))
		dst = append(dst, lineSegment{a: prev, b: next, colA: white, colB: white})
		prev = next
	}
	return dst
}

// buildRenderDescription shapes the simulation state into line sequences for
// the given window dimensions, honoring the view toggles.
func (s *simulation) buildRenderDescription(desc *renderDescription, dims vec2, view viewState) {
	desc.reset()
	if view.particles {
		desc.particles = appendParticleLines(desc.particles, s.particles, dims)
	}
	if view.field {
		desc.field = appendFieldLines(desc.field, s.field, dims)
	}
	if view.brush && s.brush.visible {
		desc.brush = appendBrushOutline(desc.brush, s.brush.pos.mul(dims), s.brush.radius*dims.x)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
