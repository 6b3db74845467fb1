package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// readInput gathers one frame of pointer state. The scroll wheel is folded
// into a running counter so the simulation sees the same monotonically
// changing quantity a native wheel counter would provide.
func (g *Game) readInput() frameInput {
	cx, cy := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()
	g.wheelCounter += int(math.Round(wheelY * wheelNotchCounts))
	return frameInput{
		cursorX:   float64(cx),
		cursorY:   float64(cy),
		width:     float64(g.width),
		height:    float64(g.height),
		primary:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		secondary: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		wheel:     g.wheelCounter,
		nowMicros: g.nowMicros(),
	}
}

// handleViewToggles processes the layer visibility hotkeys.
func (g *Game) handleViewToggles() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.view.particles = !g.view.particles
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.view.field = !g.view.field
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.view.brush = !g.view.brush
	}
}
