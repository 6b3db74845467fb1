package main

import "math"

// vec2 is a 2D float32 vector used for field cells, particle state, and
// normalized pointer coordinates.
type vec2 struct {
	x, y float32
}

func (v vec2) add(u vec2) vec2 {
	return vec2{v.x + u.x, v.y + u.y}
}

func (v vec2) sub(u vec2) vec2 {
	return vec2{v.x - u.x, v.y - u.y}
}

func (v vec2) scale(s float32) vec2 {
	return vec2{v.x * s, v.y * s}
}

func (v vec2) mul(u vec2) vec2 {
	return vec2{v.x * u.x, v.y * u.y}
}

func (v vec2) length() float32 {
	return float32(math.Hypot(float64(v.x), float64(v.y)))
}

// normalized returns the unit vector; callers must ensure v is nonzero.
func (v vec2) normalized() vec2 {
	return v.scale(1 / v.length())
}

func (v vec2) abs() vec2 {
	return vec2{float32(math.Abs(float64(v.x))), float32(math.Abs(float64(v.y)))}
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
