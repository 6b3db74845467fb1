package main

import "math"

// flowField stores a fixed-resolution grid of flow vectors addressed by
// integer cell coordinates. Positions are expressed in unit-square space and
// wrap around the grid like a torus, so any real-valued position samples a
// valid cell.
type flowField struct {
	width, height int
	cells         []vec2
}

// newFlowField allocates a zero-initialized field.
func newFlowField(width, height int) *flowField {
	return &flowField{
		width:  width,
		height: height,
		cells:  make([]vec2, width*height),
	}
}

// at returns the vector stored at cell (x, y).
func (f *flowField) at(x, y int) vec2 {
	return f.cells[y*f.width+x]
}

// set overwrites the vector stored at cell (x, y).
func (f *flowField) set(x, y int, v vec2) {
	f.cells[y*f.width+x] = v
}

// sample maps a unit-square position to a cell with floor-and-wrap
// addressing. Positions outside [0,1) wrap; negative coordinates wrap toward
// the opposite edge.
func (f *flowField) sample(p vec2) vec2 {
	x := int(math.Floor(float64(p.x)*float64(f.width))) % f.width
	if x < 0 {
		x += f.width
	}
	y := int(math.Floor(float64(p.y)*float64(f.height))) % f.height
	if y < 0 {
		y += f.height
	}
	return f.cells[y*f.width+x]
}

// footprintBounds returns the inclusive cell bounding box of the square brush
// footprint around center. Restricting brush loops to this box visits exactly
// the cells a full-grid scan would mutate. An empty range (x0 > x1 or y0 > y1)
// means the footprint lies entirely off the grid.
func (f *flowField) footprintBounds(center vec2, radius float32) (x0, y0, x1, y1 int) {
	x0 = int(math.Ceil(float64(center.x-radius) * float64(f.width)))
	x1 = int(math.Floor(float64(center.x+radius) * float64(f.width)))
	y0 = int(math.Ceil(float64(center.y-radius) * float64(f.height)))
	y1 = int(math.Floor(float64(center.y+radius) * float64(f.height)))
	if x1 < 0 || x0 > f.width-1 || y1 < 0 || y0 > f.height-1 {
		return 0, 0, -1, -1
	}
	x0 = clampCoord(x0, 0, f.width-1)
	x1 = clampCoord(x1, 0, f.width-1)
	y0 = clampCoord(y0, 0, f.height-1)
	y1 = clampCoord(y1, 0, f.height-1)
	return x0, y0, x1, y1
}

// brushFalloff returns the normalized distance of cell (x, y) from the brush
// center, capped at 1. Zero means the cell sits on the center; 1 means it sits
// on the footprint edge.
func (f *flowField) brushFalloff(x, y int, center vec2, radius float32) float32 {
	p := vec2{float32(x) / float32(f.width), float32(y) / float32(f.height)}
	forceDir := p.sub(center).abs().scale(1 / radius)
	l := forceDir.length()
	if l > 1 {
		return 1
	}
	return l
}

// dampen relaxes cells inside the square footprint toward reduced magnitude.
// Cells at the brush center are pulled toward dampenRetain of their length;
// cells on the footprint edge are left unchanged.
func (f *flowField) dampen(center vec2, radius float32) {
	x0, y0, x1, y1 := f.footprintBounds(center, radius)
	for y := y0; y <= y1; y++ {
		row := y * f.width
		for x := x0; x <= x1; x++ {
			forceLen := f.brushFalloff(x, y, center, radius)
			v := f.cells[row+x]
			damped := v.scale(dampenRetain)
			f.cells[row+x] = damped.add(v.sub(damped).scale(forceLen))
		}
	}
}

// comb pushes cells inside the footprint around cur along the stroke
// direction, weighting cells near the center more strongly, then renormalizes
// any cell whose magnitude exceeds 1. Strokes at or below strokeThreshold are
// ignored as pointer jitter.
func (f *flowField) comb(prev, cur vec2, radius float32) {
	stroke := cur.sub(prev)
	strokeLength := stroke.length()
	if strokeLength <= strokeThreshold {
		return
	}
	strokeWeight := float32(math.Pow(float64(strokeLength), strokeExponent))
	strokeDir := stroke.scale(1 / strokeLength)
	gain := strokeWeight * (combGainNumerator / (4 * radius))

	x0, y0, x1, y1 := f.footprintBounds(cur, radius)
	for y := y0; y <= y1; y++ {
		row := y * f.width
		for x := x0; x <= x1; x++ {
			forceLen := f.brushFalloff(x, y, cur, radius)
			v := f.cells[row+x].add(strokeDir.scale((1 - forceLen) * gain))
			if l := v.length(); l > 1 {
				v = v.scale(1 / l)
			}
			f.cells[row+x] = v
		}
	}
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
