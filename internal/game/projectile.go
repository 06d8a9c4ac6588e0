package game

import "math"

// Termination says why a projectile stopped flying.
type Termination int

const (
	TermNone    Termination = iota // still in flight
	TermLeft                       // left the screen on the left
	TermBottom                     // dropped below the screen
	TermRight                      // left the screen on the right
	TermTerrain                    // struck solid terrain
)

func (t Termination) String() string {
	switch t {
	case TermNone:
		return "none"
	case TermLeft:
		return "left"
	case TermBottom:
		return "bottom"
	case TermRight:
		return "right"
	case TermTerrain:
		return "terrain"
	default:
		return "unknown"
	}
}

// Shot is the committed aim a projectile is launched with.
type Shot struct {
	Angle    int // degrees
	Power    int
	LeftTeam bool
}

// Physics holds the integration constants.
type Physics struct {
	Gravity      float64
	FPS          float64
	ScreenWidth  int
	ScreenHeight int
}

// Projectile is the single ball in flight.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	Radius int
	Active bool
}

// Reset parks the projectile at (x,y), inactive, ready for the next launch.
func (b *Projectile) Reset(x, y float64) {
	b.X, b.Y = x, y
	b.VX, b.VY = 0, 0
	b.Active = false
}

// Update advances the ball by one tick. The first call after Reset seeds
// the velocity from shot.
func (b *Projectile) Update(shot Shot, ph Physics, terrain AlphaSampler) Termination {
	if !b.Active {
		rad := float64(shot.Angle) * math.Pi / 180
		b.VX = math.Cos(rad) * float64(shot.Power) * 3 / ph.FPS
		b.VY = -math.Sin(rad) * float64(shot.Power) * 3 / ph.FPS
		b.Active = true
		if shot.LeftTeam {
			b.VX = -b.VX
		}
	}

	b.X += b.VX
	b.Y += b.VY
	b.VY += ph.Gravity / ph.FPS

	return b.Check(ph, terrain)
}

// Check applies the termination rules in order: left, bottom, right, terrain.
func (b *Projectile) Check(ph Physics, terrain AlphaSampler) Termination {
	r := float64(b.Radius)
	switch {
	case b.X+r < 0:
		return TermLeft
	case b.Y >= float64(ph.ScreenHeight):
		return TermBottom
	case b.X-r > float64(ph.ScreenWidth):
		return TermRight
	}
	if terrain.AlphaAt(int(b.X+r), int(b.Y)) > 0 {
		return TermTerrain
	}
	return TermNone
}

// CraterCenter is the carve anchor for the ball's final position: half a
// stencil below the ball, so the crater is centred on the impact.
func (b *Projectile) CraterCenter(stencilHeight int) (int, int) {
	return int(b.X), int(b.Y + float64(stencilHeight/2))
}
