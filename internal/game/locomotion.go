package game

// Ground-following thresholds. These are tuned by feel; changing any of
// them changes how slopes and steps play.
const (
	probeUpLimit   = -7 // deepest upward scan of FindGroundPixel
	probeDownLimit = 4  // deepest downward scan of FindGroundPixel

	wallStep    = -6 // below this the walker bounces off
	climbStep   = -2 // below this the walker starts ascending
	dropStep    = 3  // above this the walker starts falling
	fallPerTick = 3
	climbLimit  = 8

	// locomotionDivider runs the state machine every Nth frame.
	locomotionDivider = 2
)

// stateHandler advances the player by one locomotion tick in a given state.
type stateHandler func(l *Locomotion)

var stateHandlers = map[LocomotionState]stateHandler{
	StateWalking:   (*Locomotion).walk,
	StateFalling:   (*Locomotion).fall,
	StateAscending: (*Locomotion).ascend,
	StateStanding:  (*Locomotion).idle,
	StateDead:      (*Locomotion).idle,
}

// Locomotion drives a Player across a Surface.
type Locomotion struct {
	P      *Player
	Ground Surface

	// OnTransition, when set, is told about every committed state change.
	OnTransition func(from, to LocomotionState)

	frame int
}

// NewLocomotion binds a player to the ground it walks on.
func NewLocomotion(p *Player, ground Surface) *Locomotion {
	return &Locomotion{P: p, Ground: ground}
}

// FindGroundPixel returns the signed distance from (x,y) to the ground
// surface. Negative: the foot is buried and the surface is that many rows
// up (scan stops at -7). Positive: the foot is in the air and ground was
// found that many rows down (scan stops at 4).
func FindGroundPixel(s Surface, x, y int) int {
	r := 0
	if s.Solid(x, y) {
		for s.Solid(x, y+r-1) && r > probeUpLimit {
			r--
		}
		return r
	}
	r++
	for !s.Solid(x, y+r) && r < probeDownLimit {
		r++
	}
	return r
}

// TurnAround reverses the walking direction.
func (l *Locomotion) TurnAround() {
	l.P.Dir = -l.P.Dir
}

// Transition moves the player to next. A request to walk with nothing
// underfoot becomes a fall.
func (l *Locomotion) Transition(next LocomotionState, turnAround bool) {
	p := l.P
	if turnAround {
		l.TurnAround()
	}
	if next == StateWalking && !l.Ground.Solid(p.Foot()) {
		l.Transition(StateFalling, false)
		return
	}
	if next == p.State {
		return
	}
	if next == StateAscending {
		p.Ascended = 0
	}
	if next == StateFalling {
		p.Fallen = 1
		if p.State == StateWalking {
			p.Fallen = 3
		}
		p.TrueFallen = p.Fallen
	}
	prev := p.State
	p.State = next
	if l.OnTransition != nil {
		l.OnTransition(prev, next)
	}
}

// Tick runs one frame. The state machine only advances every second frame;
// Tick reports whether it did.
func (l *Locomotion) Tick(screenHeight int) bool {
	l.frame++
	if l.frame < locomotionDivider {
		return false
	}
	l.frame = 0

	if l.P.Y >= float64(screenHeight) {
		l.Transition(StateDead, false)
	}
	l.step()
	return true
}

func (l *Locomotion) step() {
	h, ok := stateHandlers[l.P.State]
	if !ok {
		h = (*Locomotion).idle
	}
	h(l)
}

func (l *Locomotion) walk() {
	p := l.P
	p.X += p.Dir
	dy := FindGroundPixel(l.Ground, int(p.X), int(p.Y))

	switch {
	case dy < wallStep:
		l.TurnAround()
		p.X += p.Dir
	case dy < climbStep:
		l.Transition(StateAscending, false)
		p.Y += 2
	case dy < 1:
		p.Y += float64(dy)
	}

	dy = FindGroundPixel(l.Ground, int(p.X), int(p.Y))
	if dy > dropStep {
		p.Y += 4
		l.Transition(StateFalling, false)
	} else if dy > 0 {
		p.Y += float64(dy)
	}
}

func (l *Locomotion) fall() {
	p := l.P
	fell := 0
	for fell < fallPerTick && !l.Ground.Solid(p.Foot()) {
		p.Y++
		fell++
		p.Fallen++
		p.TrueFallen++
	}
	if p.Fallen > MaxFallDistance {
		p.Fallen = MaxFallDistance + 1
	}
	if p.TrueFallen > MaxFallDistance {
		p.TrueFallen = MaxFallDistance + 1
	}
	if fell < fallPerTick {
		l.Transition(StateWalking, false)
	}
}

func (l *Locomotion) ascend() {
	p := l.P
	x, _ := p.Foot()
	above := func(rows int) bool { return l.Ground.Solid(x, int(p.Y)-rows) }

	climbed := 0
	for climbed < climbLimit && p.Ascended < climbLimit && above(1) {
		climbed++
		p.Y--
		p.Ascended++
	}

	switch {
	case climbed < 2 && !above(1):
		l.Transition(StateWalking, false)
	case (p.Ascended == 4 && above(1) && above(2)) || (p.Ascended >= 5 && above(1)):
		p.X -= p.Dir
		l.Transition(StateFalling, true)
	}
}

func (l *Locomotion) idle() {}
