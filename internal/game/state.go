package game

import (
	"fmt"
	"image"
)

const playerLabel = "P1"

// TickInput is the per-frame input snapshot the simulation consumes.
// Buttons are edge-triggered: true only on the frame they went down.
type TickInput struct {
	PointerX, PointerY int
	Fire               bool
	Dig                bool
	WalkLeft           bool
	WalkRight          bool
	Restart            bool
}

// GameState is the whole simulation: one terrain, one player, one ball.
// All of it is mutated in place by Step and read by the draw pass.
type GameState struct {
	Terrain   *Terrain
	Stencil   *Stencil
	Player    *Player
	Loco      *Locomotion
	Ball      Projectile
	Aim       AimController
	BallOnAir bool
	Physics   Physics
	Tick      int
	Log       *SimLog

	cfg      Config
	pristine *image.NRGBA
}

// NewGameState builds a fresh round on a copy of terrainImg.
func NewGameState(cfg Config, terrainImg *image.NRGBA, stencil *Stencil, log *SimLog) *GameState {
	if log == nil {
		log = NewSimLog(false)
	}
	gs := &GameState{
		Stencil:  stencil,
		Log:      log,
		cfg:      cfg,
		pristine: cloneNRGBA(terrainImg),
		Physics: Physics{
			Gravity:      cfg.Gravity,
			FPS:          float64(cfg.FPS),
			ScreenWidth:  cfg.ScreenWidth,
			ScreenHeight: cfg.ScreenHeight,
		},
	}
	gs.reset()
	return gs
}

func (gs *GameState) reset() {
	gs.Terrain = NewTerrain(cloneNRGBA(gs.pristine))
	gs.Player = NewPlayer(float64(gs.cfg.PlayerStartX), float64(gs.cfg.PlayerStartY), gs.cfg.PlayerWidth, gs.cfg.PlayerHeight)
	gs.Loco = NewLocomotion(gs.Player, gs.Terrain)
	gs.Loco.OnTransition = func(from, to LocomotionState) {
		gs.Log.Add(gs.Tick, playerLabel, "state", "change", fmt.Sprintf("%s → %s", from, to), float64(to))
	}
	gs.Ball = Projectile{Radius: gs.cfg.BallRadius}
	gs.BallOnAir = false
	gs.Loco.Transition(StateWalking, false)
}

// Step runs one logical tick.
func (gs *GameState) Step(in TickInput) {
	gs.Tick++

	if in.Restart {
		gs.reset()
		gs.Log.Add(gs.Tick, "--", "input", "restart", "round reset", 0)
		return
	}
	gs.handleWalkKeys(in)
	if in.Dig {
		n := gs.Terrain.CutSquare(in.PointerX, in.PointerY, gs.cfg.DigHalfSize)
		gs.Log.Add(gs.Tick, "--", "terrain", "dig", fmt.Sprintf("(%d,%d) cleared=%d", in.PointerX, in.PointerY, n), float64(n))
	}

	if !gs.BallOnAir {
		gs.stepPlayer(in)
	} else {
		gs.stepBall()
	}

	if gs.Terrain.CommitIfDirty() {
		gs.Log.AddVerbose(gs.Tick, "--", "terrain", "commit", fmt.Sprintf("revision=%d", gs.Terrain.Revision()), float64(gs.Terrain.Revision()))
	}
}

// handleWalkKeys forces the walker straight into Walking, bypassing the
// transition rules, so a standing cannon can be nudged off its spot.
func (gs *GameState) handleWalkKeys(in TickInput) {
	p := gs.Player
	if !p.Alive() {
		return
	}
	switch {
	case in.WalkRight:
		p.State = StateWalking
		p.Dir = 1
	case in.WalkLeft:
		p.State = StateWalking
		p.Dir = -1
	default:
		return
	}
	gs.Log.Add(gs.Tick, playerLabel, "input", "walk", fmt.Sprintf("dir=%+.0f", p.Dir), p.Dir)
}

func (gs *GameState) stepPlayer(in TickInput) {
	gs.Loco.Tick(gs.Physics.ScreenHeight)
	p := gs.Player
	if !p.Alive() {
		return
	}
	gs.Log.AddVerbose(gs.Tick, playerLabel, "move", "position", fmt.Sprintf("(%.0f,%.0f) %s", p.X, p.Y, p.State), p.Y)

	if !gs.Aim.Update(p, in.PointerX, in.PointerY, in.Fire) {
		return
	}
	gs.Ball.Reset(p.X, p.Y)
	gs.Loco.Transition(StateStanding, false)
	gs.BallOnAir = true
	side := "right"
	if p.LeftTeam {
		side = "left"
	}
	gs.Log.Add(gs.Tick, playerLabel, "shot", "fired",
		fmt.Sprintf("angle=%d power=%d side=%s", p.PrevAngle, p.PrevPower, side), float64(p.PrevPower))
}

func (gs *GameState) stepBall() {
	term := gs.Ball.Update(gs.Aim.Shot(gs.Player), gs.Physics, gs.Terrain)
	gs.Log.AddVerbose(gs.Tick, "ball", "move", "position", fmt.Sprintf("(%.1f,%.1f) v=(%.2f,%.2f)", gs.Ball.X, gs.Ball.Y, gs.Ball.VX, gs.Ball.VY), gs.Ball.Y)
	if term == TermNone {
		return
	}

	gs.Ball.Active = false
	gs.BallOnAir = false
	cx, cy := gs.Ball.CraterCenter(gs.Stencil.Height)
	n := gs.Terrain.Carve(cx, cy, gs.Stencil)
	gs.Player.ImpactX, gs.Player.ImpactY = float64(cx), float64(cy)
	gs.Log.Add(gs.Tick, "ball", "impact", term.String(), fmt.Sprintf("(%.0f,%.0f)", gs.Ball.X, gs.Ball.Y), gs.Ball.X)
	gs.Log.Add(gs.Tick, "--", "terrain", "carve", fmt.Sprintf("centre=(%d,%d) cleared=%d", cx, cy, n), float64(n))
}

// ShotReadout is a one-line description of the last committed shot.
func (gs *GameState) ShotReadout() string {
	p := gs.Player
	side := "right"
	if p.LeftTeam {
		side = "left"
	}
	return fmt.Sprintf("angle=%d power=%d side=%s aim=(%.0f,%.0f) impact=(%.0f,%.0f)",
		p.PrevAngle, p.PrevPower, side, p.PrevX, p.PrevY, p.ImpactX, p.ImpactY)
}
