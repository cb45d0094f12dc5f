//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"ising-mc/internal/app"
	"ising-mc/internal/core"
	_ "ising-mc/internal/ising"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	opts := map[string]string{"n": fmt.Sprint(cfg.Size)}
	if cfg.Temp > 0 {
		opts["t"] = fmt.Sprint(cfg.Temp)
	}

	sim := factory(opts)
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("ising-mc — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
