package game

import "math"

// AimController turns the pointer into an elevation angle and power.
type AimController struct{}

// Update recomputes the player's aim from the pointer at (px,py) and
// reports whether a shot was fired this tick. The pointer must be level
// with or above the player; below it the aim collapses to a neutral,
// zero-power state and fire is ignored.
func (AimController) Update(p *Player, px, py int, fire bool) bool {
	fx, fy := float64(px), float64(py)
	if fy > p.Y {
		p.AimX, p.AimY = p.X, p.Y
		p.AimPower = 0
		p.AimAngle = 0
		return false
	}

	dist := math.Hypot(p.X-fx, p.Y-fy)
	p.AimPower = int(dist)
	p.AimAngle = 0
	if p.AimPower > 0 {
		p.AimAngle = int(math.Asin(math.Min(1, (p.Y-fy)/float64(p.AimPower))) * 180 / math.Pi)
	}
	p.AimX, p.AimY = fx, fy
	p.LeftTeam = fx < p.X

	if !fire {
		return false
	}
	p.PrevX, p.PrevY = p.AimX, p.AimY
	p.PrevPower = p.AimPower
	p.PrevAngle = p.AimAngle
	return true
}

// Shot returns the committed snapshot used to launch the projectile.
func (AimController) Shot(p *Player) Shot {
	return Shot{Angle: p.PrevAngle, Power: p.PrevPower, LeftTeam: p.LeftTeam}
}
