//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"lifepaint/internal/app"
	"lifepaint/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	game := app.New(cfg)

	ebiten.SetWindowTitle("lifepaint")
	ebiten.SetWindowSize(cfg.WindowSize, cfg.WindowSize+ui.PanelHeight)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
