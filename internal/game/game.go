package game

import (
	"image"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	zoomMin = 1.0
	zoomMax = 4.0
)

// Game adapts GameState to ebiten: it polls input, steps the simulation
// once per frame and draws the result.
type Game struct {
	cfg    Config
	state  *GameState
	input  Input
	logger *slog.Logger
	feed   *EventFeed

	cannonImg *ebiten.Image
	cannonSrc *image.NRGBA

	// Terrain texture, re-uploaded whenever the terrain revision moves.
	terrainTex *ebiten.Image
	texSrc     *Terrain
	texRev     uint64
	worldBuf   *ebiten.Image

	camZoom float64
	showHUD bool
	status  string // last transient message shown in the HUD
}

// New builds a windowed game from loaded assets.
func New(cfg Config, assets Assets, logger *slog.Logger) *Game {
	return newGame(cfg, assets, logger, ebitenInput{})
}

func newGame(cfg Config, assets Assets, logger *slog.Logger, in Input) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		cfg:       cfg,
		input:     in,
		logger:    logger,
		feed:      NewEventFeed(cfg.EventFeedSize),
		cannonSrc: assets.Cannon,
		camZoom:   1,
		showHUD:   true,
	}
	simLog := NewSimLog(false)
	simLog.Sink = func(e SimLogEntry) {
		g.feed.Add(e)
		g.logger.Debug("sim event",
			"tick", e.Tick, "actor", e.Actor, "category", e.Category, "key", e.Key, "value", e.Value)
	}
	g.state = NewGameState(cfg, assets.Terrain, assets.Stencil, simLog)
	return g
}

// State exposes the simulation for the headless tools.
func (g *Game) State() *GameState { return g.state }

func (g *Game) Update() error {
	if g.input.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleViewKeys()
	g.state.Step(g.readInput())
	return nil
}

// readInput builds the simulation input, mapping the cursor from screen
// space into world space through the camera zoom.
func (g *Game) readInput() TickInput {
	mx, my := g.input.CursorPosition()
	return TickInput{
		PointerX:  int(float64(mx) / g.camZoom),
		PointerY:  int(float64(my) / g.camZoom),
		Fire:      g.input.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Dig:       g.input.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		WalkRight: g.input.IsKeyJustPressed(ebiten.KeyArrowRight),
		WalkLeft:  g.input.IsKeyJustPressed(ebiten.KeyArrowLeft),
		Restart:   g.input.IsKeyJustPressed(ebiten.KeyR),
	}
}

// handleViewKeys processes the keys that never touch the simulation.
func (g *Game) handleViewKeys() {
	if g.input.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.camZoom++
	} else if g.input.IsKeyJustPressed(ebiten.KeyPageDown) {
		g.camZoom--
	}
	if g.camZoom < zoomMin {
		g.camZoom = zoomMin
	}
	if g.camZoom > zoomMax {
		g.camZoom = zoomMax
	}

	if g.input.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	if g.input.IsKeyJustPressed(ebiten.KeyC) {
		readout := g.state.ShotReadout()
		if err := setClipboardText(readout); err != nil {
			g.logger.Warn("clipboard copy failed", "err", err)
			g.status = "clipboard unavailable"
		} else {
			g.status = "copied: " + readout
		}
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
