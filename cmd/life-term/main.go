package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lifepaint/internal/app"
	"lifepaint/internal/game"
	"lifepaint/internal/term"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	size := cfg.GridSize()
	display := term.NewDisplay(screen, size)
	events := term.NewEvents(screen, size)

	var res game.Result
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return events.Pump(gctx)
	})
	g.Go(func() error {
		defer screen.Fini()
		var err error
		res, err = game.Play(gctx, cfg.Options(), display, events, game.Sleep)
		return err
	})

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("stopped in %s phase after %d generations, %d cells alive", res.Phase, res.Generation, res.Grid.Population())
}
