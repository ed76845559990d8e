//go:build ebiten

package app

import (
	"lifepaint/internal/core"
	"lifepaint/internal/game"
	"lifepaint/internal/render"
	"lifepaint/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the edit and simulation phases to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	canvas  *render.Canvas
	hud     *ui.HUD
	input   core.Queue
	session *game.EditSession
	sim     *game.Simulation
	step    *core.FixedStep
	size    core.Size
}

// New constructs a Game for a validated configuration and starts the edit
// phase.
func New(cfg *Config) *Game {
	size := cfg.GridSize()
	canvas := render.NewCanvas(cfg.WindowSize, cfg.WindowSize)
	g := &Game{
		cfg:     cfg,
		canvas:  canvas,
		hud:     ui.NewHUD(cfg.WindowSize),
		session: game.NewEditSession(core.NewGrid(size.Rows, size.Cols), canvas),
		step:    core.NewFixedStep(cfg.TickInterval()),
		size:    size,
	}
	g.session.Begin()
	return g
}

// Update gathers input and advances whichever phase is active.
func (g *Game) Update() error {
	g.collectInput()

	if g.sim == nil {
		if g.session.Apply(g.input.Poll()) {
			return ebiten.Termination
		}
		if g.session.State() == game.Done {
			g.sim = game.NewSimulation(g.session.Grid(), g.canvas)
			g.step.Reset()
			g.step.ShouldStep() // start the clock at confirm
		}
	} else if g.step.ShouldStep() {
		if g.sim.Tick(g.input.Poll()) {
			return ebiten.Termination
		}
	}

	g.hud.Update(g.status())
	return nil
}

// collectInput converts this frame's ebiten input into core events. Clicks
// outside the grid, including the HUD panel and any partial trailing cell,
// are dropped here.
func (g *Game) collectInput() {
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.input.Push(core.Quit())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.input.Push(core.KeyDown(core.KeyEnter))
	}
	buttons := []struct {
		mb  ebiten.MouseButton
		btn core.Button
	}{
		{ebiten.MouseButtonLeft, core.ButtonPrimary},
		{ebiten.MouseButtonRight, core.ButtonSecondary},
	}
	for _, b := range buttons {
		if !inpututil.IsMouseButtonJustPressed(b.mb) {
			continue
		}
		x, y := ebiten.CursorPosition()
		cell := core.CellAt(x, y)
		if x < 0 || y < 0 || cell.Row >= g.size.Rows || cell.Col >= g.size.Cols {
			continue
		}
		g.input.Push(core.MouseDown(b.btn, x, y))
	}
}

func (g *Game) status() ui.Status {
	if g.sim == nil {
		return ui.Status{
			Phase:      game.Editing.String(),
			Population: g.session.Grid().Population(),
		}
	}
	return ui.Status{
		Phase:      "running",
		Generation: g.sim.Generation(),
		Population: g.sim.Population(),
	}
}

// Draw renders the last presented frame and the status panel below it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Draw(screen)
	g.hud.Draw(screen, g.cfg.WindowSize)
}

// Layout returns the logical screen size: the square grid window plus the
// status panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowSize, g.cfg.WindowSize + ui.PanelHeight
}
