package game

import (
	"image"
	"math"
)

// HeadlessSim drives a GameState without a window. It backs the tests and
// cmd/headless-report, and supports deterministic terrain and scripted
// input.
type HeadlessSim struct {
	Config Config
	State  *GameState
	SimLog *SimLog

	terrain *image.NRGBA
	flatRow *int
	stencil *Stencil
	walls   []image.Rectangle
	player  *[2]float64
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra   simOptionKind = iota // screen size, physics, terrain source, verbose
	simOptTerrain                      // terrain decorations, applied to the built image
	simOptPlayer                       // player start position
)

// SimOption is a builder function applied to a HeadlessSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*HeadlessSim)
}

// WithScreenSize sets the playfield dimensions.
func WithScreenSize(w, h int) SimOption {
	return SimOption{simOptInfra, func(hs *HeadlessSim) {
		hs.Config.ScreenWidth = w
		hs.Config.ScreenHeight = h
	}}
}

// WithSeed sets the seed for generated terrain.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(hs *HeadlessSim) {
		hs.Config.TerrainSeed = seed
	}}
}

// WithPhysics overrides gravity and the integration rate.
func WithPhysics(gravity float64, fps int) SimOption {
	return SimOption{simOptInfra, func(hs *HeadlessSim) {
		hs.Config.Gravity = gravity
		hs.Config.FPS = fps
	}}
}

// WithTerrainImage uses img as the terrain instead of generated hills.
func WithTerrainImage(img *image.NRGBA) SimOption {
	return SimOption{simOptInfra, func(hs *HeadlessSim) {
		hs.terrain = img
	}}
}

// WithFlatGround makes the terrain solid for every y >= row.
func WithFlatGround(row int) SimOption {
	return SimOption{simOptInfra, func(hs *HeadlessSim) {
		hs.flatRow = &row
	}}
}

// WithWall paints a solid block onto the terrain.
func WithWall(x, y, w, h int) SimOption {
	return SimOption{simOptTerrain, func(hs *HeadlessSim) {
		hs.walls = append(hs.walls, image.Rect(x, y, x+w, y+h))
	}}
}

// WithStencil sets the crater shape.
func WithStencil(s *Stencil) SimOption {
	return SimOption{simOptInfra, func(hs *HeadlessSim) {
		hs.stencil = s
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(hs *HeadlessSim) {
		hs.SimLog = NewSimLog(v)
	}}
}

// WithPlayerAt places the player's foot at (x,y) before the first tick.
func WithPlayerAt(x, y float64) SimOption {
	return SimOption{simOptPlayer, func(hs *HeadlessSim) {
		hs.player = &[2]float64{x, y}
	}}
}

// NewHeadlessSim constructs a HeadlessSim from the given options in ordered passes:
//  1. Infrastructure (screen size, physics, terrain source, stencil, verbose)
//  2. Terrain decorations (walls)
//  3. GameState
//  4. Player placement
func NewHeadlessSim(opts ...SimOption) *HeadlessSim {
	hs := &HeadlessSim{
		Config: DefaultConfig(),
		SimLog: NewSimLog(false),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(hs)
		}
	}
	if hs.terrain == nil && hs.flatRow != nil {
		hs.terrain = FlatTerrain(hs.Config.ScreenWidth, hs.Config.ScreenHeight, *hs.flatRow)
	}
	if hs.terrain == nil {
		hs.terrain = GenerateTerrain(hs.Config.ScreenWidth, hs.Config.ScreenHeight, hs.Config.TerrainSeed)
	}
	if hs.stencil == nil {
		hs.stencil = CircleStencil(hs.Config.CraterRadius)
	}
	for _, o := range opts {
		if o.kind == simOptTerrain {
			o.fn(hs)
		}
	}
	for _, r := range hs.walls {
		FillRect(hs.terrain, r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	}
	for _, o := range opts {
		if o.kind == simOptPlayer {
			o.fn(hs)
		}
	}
	if hs.player != nil {
		hs.Config.PlayerStartX = int(hs.player[0])
		hs.Config.PlayerStartY = int(hs.player[1])
	}
	hs.State = NewGameState(hs.Config, hs.terrain, hs.stencil, hs.SimLog)
	return hs
}

// Player is shorthand for the simulated player.
func (hs *HeadlessSim) Player() *Player { return hs.State.Player }

// CurrentTick returns the current simulation tick.
func (hs *HeadlessSim) CurrentTick() int { return hs.State.Tick }

// idleInput parks the pointer just below the player so no aim is taken.
func (hs *HeadlessSim) idleInput() TickInput {
	p := hs.State.Player
	return TickInput{PointerX: int(p.X), PointerY: int(p.Y) + 1}
}

// Step advances one tick with explicit input.
func (hs *HeadlessSim) Step(in TickInput) {
	hs.State.Step(in)
}

// RunTicks advances the simulation n ticks with no input.
func (hs *HeadlessSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		hs.State.Step(hs.idleInput())
	}
}

// RunUntil advances up to maxTicks idle ticks, stopping early when predicate
// returns true. Returns the tick at which it was satisfied, or -1.
func (hs *HeadlessSim) RunUntil(predicate func(*HeadlessSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		hs.State.Step(hs.idleInput())
		if predicate(hs) {
			return hs.State.Tick
		}
	}
	return -1
}

// FireAt aims at the pointer position (px,py) and pulls the trigger.
// Returns whether the shot left the barrel.
func (hs *HeadlessSim) FireAt(px, py int) bool {
	hs.State.Step(TickInput{PointerX: px, PointerY: py, Fire: true})
	return hs.State.BallOnAir
}

// Fire converts an elevation and power into a pointer position and fires.
func (hs *HeadlessSim) Fire(angleDeg float64, power int, left bool) bool {
	p := hs.State.Player
	rad := angleDeg * math.Pi / 180
	dx := math.Cos(rad) * float64(power)
	if left {
		dx = -dx
	}
	px := int(math.Round(p.X + dx))
	py := int(math.Round(p.Y - math.Sin(rad)*float64(power)))
	return hs.FireAt(px, py)
}

// RunUntilLanded steps until the ball in flight terminates. It returns how
// the flight ended and the number of ticks it took, or TermNone and -1 when
// maxTicks ran out or no ball was in the air.
func (hs *HeadlessSim) RunUntilLanded(maxTicks int) (Termination, int) {
	if !hs.State.BallOnAir {
		return TermNone, -1
	}
	start := hs.State.Tick
	for i := 0; i < maxTicks; i++ {
		hs.State.Step(hs.idleInput())
		if !hs.State.BallOnAir {
			if e, ok := hs.SimLog.LastOf("impact", ""); ok {
				return parseTermination(e.Key), hs.State.Tick - start
			}
			return TermNone, hs.State.Tick - start
		}
	}
	return TermNone, -1
}

func parseTermination(s string) Termination {
	for t := TermNone; t <= TermTerrain; t++ {
		if t.String() == s {
			return t
		}
	}
	return TermNone
}

// Snapshot is a lightweight copy of the player at a tick.
type Snapshot struct {
	Tick       int
	X, Y       float64
	State      LocomotionState
	Fallen     int
	TrueFallen int
	BallOnAir  bool
}

// Snapshot returns the current player state.
func (hs *HeadlessSim) Snapshot() Snapshot {
	p := hs.State.Player
	return Snapshot{
		Tick:       hs.State.Tick,
		X:          p.X,
		Y:          p.Y,
		State:      p.State,
		Fallen:     p.Fallen,
		TrueFallen: p.TrueFallen,
		BallOnAir:  hs.State.BallOnAir,
	}
}
