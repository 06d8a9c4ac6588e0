package game

// LocomotionState is the high-level movement state of the player.
type LocomotionState int

const (
	StateWalking LocomotionState = iota + 1
	StateFalling
	StateAscending
	StateStanding
	StateDead
)

func (s LocomotionState) String() string {
	switch s {
	case StateWalking:
		return "walking"
	case StateFalling:
		return "falling"
	case StateAscending:
		return "ascending"
	case StateStanding:
		return "standing"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Player is the single cannon on the field. X,Y is the foot position.
type Player struct {
	X, Y          float64
	Width, Height int
	Dir           float64 // -1, 0 or +1 pixels per walking step

	State      LocomotionState
	Ascended   int
	Fallen     int
	TrueFallen int

	// Live aim, recomputed every tick while aiming.
	AimX, AimY float64
	AimAngle   int // degrees of elevation, [-90, 90]
	AimPower   int
	LeftTeam   bool // pointer is left of the player: shots go left

	// Snapshot taken when the shot was fired.
	PrevX, PrevY float64
	PrevAngle    int
	PrevPower    int

	ImpactX, ImpactY float64
}

// NewPlayer places a standing player at (x,y) with a neutral aim.
func NewPlayer(x, y float64, w, h int) *Player {
	return &Player{
		X:       x,
		Y:       y,
		Width:   w,
		Height:  h,
		State:   StateStanding,
		AimX:    x,
		AimY:    y,
		PrevX:   x,
		PrevY:   y,
		ImpactX: -100,
		ImpactY: -100,
	}
}

// Foot returns the integer pixel the player stands on.
func (p *Player) Foot() (int, int) {
	return int(p.X), int(p.Y)
}

// Alive reports whether the player has not fallen off the screen.
func (p *Player) Alive() bool {
	return p.State != StateDead
}
