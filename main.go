package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	cfg, err := loadSettings(*configFlag)
	if err != nil {
		log.Fatalf("loading settings: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := newGame(cfg, rng)

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}

	if g.telemetry != nil {
		if err := g.telemetry.close(); err != nil {
			log.Printf("closing telemetry: %v", err)
		}
	}
	if g.sim.gpu != nil {
		g.sim.gpu.Close()
	}
}
