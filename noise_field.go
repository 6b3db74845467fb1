package main

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// seedNoiseField fills the flow field with the curl of a simplex noise
// potential. Curl fields are divergence-free, which gives the particles
// closed swirling currents to ride before the user touches the brush.
// Magnitudes are clamped to 1 to honor the field invariant.
func seedNoiseField(f *flowField, seed int64) {
	noise := opensimplex.New(seed)
	for y := 0; y < f.height; y++ {
		py := (float64(y) + 0.5) / float64(f.height) * noiseFrequency
		for x := 0; x < f.width; x++ {
			px := (float64(x) + 0.5) / float64(f.width) * noiseFrequency
			ddx := (noise.Eval2(px+noiseEpsilon, py) - noise.Eval2(px-noiseEpsilon, py)) / (2 * noiseEpsilon)
			ddy := (noise.Eval2(px, py+noiseEpsilon) - noise.Eval2(px, py-noiseEpsilon)) / (2 * noiseEpsilon)
			v := vec2{float32(ddy * noiseGain), float32(-ddx * noiseGain)}
			if l := v.length(); l > 1 {
				v = v.scale(1 / l)
			}
			f.set(x, y, v)
		}
	}
}
