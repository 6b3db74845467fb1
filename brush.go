package main

// frameInput carries one frame's worth of pointer and timing state from the
// presentation layer into the simulation. Cursor coordinates are window
// pixels; the core normalizes them against the window dimensions.
type frameInput struct {
	cursorX, cursorY float64
	width, height    float64
	primary          bool
	secondary        bool
	wheel            int
	nowMicros        int64
}

// brush tracks the pointer-driven brush: current and previous stroke
// positions in unit-square space, the clamped radius, button states, and the
// activity timestamp that fades the on-screen outline.
type brush struct {
	pos, prev vec2
	radius    float32

	primary   bool
	secondary bool

	wheel     int
	wheelPrev int

	lastActivity int64
	visible      bool
}

// newBrush returns a brush centered in the window at the default radius.
func newBrush() brush {
	return brush{
		pos:    vec2{0.5, 0.5},
		prev:   vec2{0.5, 0.5},
		radius: defaultBrushRadius,
	}
}

// update folds one frame of input into the brush state and reports whether
// the pointer moved (position or wheel changed). The radius is adjusted by
// the wheel delta and always clamped, so brush operators never see a
// non-positive radius.
func (b *brush) update(in frameInput) (moved bool) {
	b.prev = b.pos
	if in.width > 0 && in.height > 0 {
		b.pos = vec2{float32(in.cursorX / in.width), float32(in.cursorY / in.height)}
	}
	b.primary = in.primary
	b.secondary = in.secondary

	b.wheelPrev = b.wheel
	b.wheel = in.wheel
	wheelDelta := b.wheel - b.wheelPrev
	if wheelDelta != 0 {
		b.radius = clamp32(b.radius+wheelRadiusStep*float32(wheelDelta), minBrushRadius, maxBrushRadius)
	}

	moved = b.pos != b.prev || wheelDelta != 0
	if moved || b.primary || b.secondary {
		b.lastActivity = in.nowMicros
	}
	b.visible = in.nowMicros-b.lastActivity < brushFadeMicros
	return moved
}
