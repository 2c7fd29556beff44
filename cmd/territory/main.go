//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"territory/internal/app"
	"territory/internal/sims/empire"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := empire.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	scale := flag.Int("scale", 2, "pixel scale multiplier")
	tps := flag.Int("tps", 60, "generations per second")
	hudWidth := flag.Int("hud", 260, "HUD panel width in pixels (0 disables)")
	flag.Parse()

	world := empire.NewWithConfig(cfg)
	world.Reset(cfg.Seed)

	game := app.New(world, *scale, *hudWidth, cfg.Seed)
	size := world.Size()

	ebiten.SetWindowTitle("territory")
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(size.W**scale+*hudWidth, size.H**scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
