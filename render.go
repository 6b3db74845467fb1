package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteSubImage is the 1x1 texture sampled by every line quad; the border
// pixel keeps texel bleeding out of the batch.
var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Draw shapes the current simulation state into the render description and
// submits it: particle streaks additively, field vectors and the brush
// outline with ordinary alpha blending.
func (g *Game) Draw(screen *ebiten.Image) {
	dims := vec2{float32(g.width), float32(g.height)}
	g.sim.buildRenderDescription(&g.desc, dims, g.view)

	g.drawSegments(screen, g.desc.particles, ebiten.BlendLighter)
	g.drawSegments(screen, g.desc.field, ebiten.BlendSourceOver)
	for _, seg := range g.desc.brush {
		vector.StrokeLine(screen, seg.a.x, seg.a.y, seg.b.x, seg.b.y, 1, seg.colA, true)
	}

	if *debugFlag {
		msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nSim: %.2f ms\nReseeds: %d\nRadius: %.3f",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			g.lastSimDuration.Seconds()*1000, g.sim.stats.reseeds, g.sim.brush.radius)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// drawSegments submits line segments as one-pixel quads through
// DrawTriangles, chunked so each call stays below the uint16 index ceiling.
func (g *Game) drawSegments(screen *ebiten.Image, segs []lineSegment, blend ebiten.Blend) {
	if len(segs) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{Blend: blend}
	for start := 0; start < len(segs); start += linesPerBatch {
		end := start + linesPerBatch
		if end > len(segs) {
			end = len(segs)
		}
		g.verts = g.verts[:0]
		g.indices = g.indices[:0]
		for _, seg := range segs[start:end] {
			g.appendLineQuad(seg)
		}
		if len(g.indices) > 0 {
			screen.DrawTriangles(g.verts, g.indices, whiteSubImage, op)
		}
	}
}

// appendLineQuad expands a segment into a one-pixel-wide quad with
// per-endpoint colors. Zero-length segments are skipped; the render
// description already guarantees particle streaks span at least a pixel.
func (g *Game) appendLineQuad(seg lineSegment) {
	d := seg.b.sub(seg.a)
	l := d.length()
	if l == 0 {
		return
	}
	// Half-pixel offset perpendicular to the segment.
	nx := -d.y / l * 0.5
	ny := d.x / l * 0.5

	base := uint16(len(g.verts))
	ar := float32(seg.colA.R) / 255
	ag := float32(seg.colA.G) / 255
	ab := float32(seg.colA.B) / 255
	aa := float32(seg.colA.A) / 255
	br := float32(seg.colB.R) / 255
	bg := float32(seg.colB.G) / 255
	bb := float32(seg.colB.B) / 255
	ba := float32(seg.colB.A) / 255

	g.verts = append(g.verts,
		ebiten.Vertex{DstX: seg.a.x + nx, DstY: seg.a.y + ny, SrcX: 1.5, SrcY: 1.5, ColorR: ar, ColorG: ag, ColorB: ab, ColorA: aa},
		ebiten.Vertex{DstX: seg.a.x - nx, DstY: seg.a.y - ny, SrcX: 1.5, SrcY: 1.5, ColorR: ar, ColorG: ag, ColorB: ab, ColorA: aa},
		ebiten.Vertex{DstX: seg.b.x + nx, DstY: seg.b.y + ny, SrcX: 1.5, SrcY: 1.5, ColorR: br, ColorG: bg, ColorB: bb, ColorA: ba},
		ebiten.Vertex{DstX: seg.b.x - nx, DstY: seg.b.y - ny, SrcX: 1.5, SrcY: 1.5, ColorR: br, ColorG: bg, ColorB: bb, ColorA: ba},
	)
	g.indices = append(g.indices, base, base+1, base+2, base+2, base+1, base+3)
}
