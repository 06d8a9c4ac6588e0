package game

import (
	"strings"
	"testing"
)

func newFlatSim(t *testing.T, opts ...SimOption) *HeadlessSim {
	t.Helper()
	base := []SimOption{
		WithScreenSize(200, 200),
		WithFlatGround(150),
		WithStencil(CircleStencil(5)),
		WithPlayerAt(50, 150),
	}
	return NewHeadlessSim(append(base, opts...)...)
}

func TestGameState_StartsWalking(t *testing.T) {
	sim := newFlatSim(t)
	p := sim.Player()
	if p.State != StateWalking {
		t.Fatalf("state=%s, want walking", p.State)
	}
	if p.ImpactX != -100 || p.ImpactY != -100 {
		t.Fatalf("impact marker should start off-screen, got (%.0f,%.0f)", p.ImpactX, p.ImpactY)
	}
	if !sim.SimLog.HasEntry("state", "change", "standing → walking") {
		t.Fatalf("missing initial transition:\n%s", sim.SimLog.Format())
	}
}

func TestGameState_ShotCarvesCrater(t *testing.T) {
	sim := newFlatSim(t)

	if !sim.FireAt(80, 120) {
		t.Fatal("shot should leave the barrel")
	}
	if !sim.SimLog.HasEntry("shot", "fired", "angle=45 power=42") {
		t.Fatalf("unexpected shot:\n%s", sim.SimLog.Format())
	}
	if sim.Player().State != StateStanding {
		t.Fatalf("player should stand while the ball flies, got %s", sim.Player().State)
	}

	term, ticks := sim.RunUntilLanded(1000)
	if term != TermTerrain || ticks <= 0 {
		t.Fatalf("term=%s ticks=%d\n%s", term, ticks, sim.SimLog.Format())
	}
	if sim.State.Ball.Active || sim.State.BallOnAir {
		t.Fatal("ball should be spent after impact")
	}
	if sim.State.Terrain.Revision() != 1 {
		t.Fatalf("revision=%d, want 1", sim.State.Terrain.Revision())
	}
	if sim.SimLog.SumNum("terrain", "carve") <= 0 {
		t.Fatalf("crater cleared nothing:\n%s", sim.SimLog.Format())
	}

	p := sim.Player()
	ix, iy := int(p.ImpactX), int(p.ImpactY)
	if ix < 60 || ix > 100 {
		t.Fatalf("impact x=%d outside expected range", ix)
	}
	if sim.State.Terrain.Solid(ix, iy-1) {
		t.Fatalf("pixel above the crater anchor should be gone at (%d,%d)", ix, iy-1)
	}
	if !sim.State.Terrain.Solid(ix, iy+2) {
		t.Fatalf("pixel below the crater should remain at (%d,%d)", ix, iy+2)
	}
}

func TestGameState_OffScreenShot(t *testing.T) {
	sim := newFlatSim(t, WithPhysics(0, 60), WithPlayerAt(20, 150))

	if !sim.FireAt(0, 130) {
		t.Fatal("shot should leave the barrel")
	}
	if !sim.Player().LeftTeam {
		t.Fatal("pointer left of the player should shoot left")
	}
	term, _ := sim.RunUntilLanded(1000)
	if term != TermLeft {
		t.Fatalf("term=%s, want left\n%s", term, sim.SimLog.Format())
	}
	if n := sim.SimLog.SumNum("terrain", "carve"); n != 0 {
		t.Fatalf("off-screen crater cleared %.0f cells", n)
	}
}

func TestGameState_NoAimBelowPlayer(t *testing.T) {
	sim := newFlatSim(t)
	if sim.FireAt(120, 170) {
		t.Fatal("firing at a pointer below the player should do nothing")
	}
	if sim.SimLog.CountCategory("shot", "fired") != 0 {
		t.Fatal("no shot should be logged")
	}
}

func TestGameState_Dig(t *testing.T) {
	sim := newFlatSim(t)
	sim.Step(TickInput{PointerX: 100, PointerY: 160, Dig: true})

	e, ok := sim.SimLog.LastOf("terrain", "dig")
	if !ok || e.NumVal != 100 {
		t.Fatalf("dig entry=%+v ok=%v, want 100 cells", e, ok)
	}
	if sim.State.Terrain.Solid(100, 160) {
		t.Fatal("dug pixel should be transparent after the tick")
	}
	if !sim.State.Terrain.Solid(100, 170) {
		t.Fatal("pixel outside the dig should remain")
	}
}

func TestGameState_WalkKeys(t *testing.T) {
	sim := newFlatSim(t)
	sim.Step(TickInput{PointerX: 50, PointerY: 151, WalkRight: true})
	if p := sim.Player(); p.Dir != 1 || p.State != StateWalking {
		t.Fatalf("dir=%.0f state=%s", p.Dir, p.State)
	}
	sim.RunTicks(10)
	if x := sim.Player().X; x != 55 {
		t.Fatalf("x=%.0f, want 55 after five locomotion ticks", x)
	}

	sim.Step(TickInput{PointerX: 55, PointerY: 151, WalkLeft: true})
	if sim.Player().Dir != -1 {
		t.Fatal("left arrow should reverse direction")
	}
}

func TestGameState_FallsToDeath(t *testing.T) {
	sim := NewHeadlessSim(
		WithScreenSize(200, 200),
		WithFlatGround(1000),
		WithPlayerAt(50, 190),
	)
	if sim.Player().State != StateFalling {
		t.Fatalf("player over nothing should fall, got %s", sim.Player().State)
	}
	sim.RunTicks(20)
	p := sim.Player()
	if p.State != StateDead {
		t.Fatalf("state=%s y=%.0f, want dead", p.State, p.Y)
	}

	sim.Step(TickInput{PointerX: 50, PointerY: 151, WalkRight: true})
	if p.State != StateDead {
		t.Fatal("walk keys must not revive a dead player")
	}
	if sim.FireAt(60, 100) {
		t.Fatal("a dead player cannot fire")
	}
}

func TestGameState_RestartRestoresTerrain(t *testing.T) {
	sim := newFlatSim(t)
	sim.Step(TickInput{PointerX: 100, PointerY: 160, Dig: true})
	if sim.State.Terrain.Solid(100, 160) {
		t.Fatal("dig should have cleared the pixel")
	}
	sim.RunTicks(6)

	sim.Step(TickInput{Restart: true})
	if !sim.State.Terrain.Solid(100, 160) {
		t.Fatal("restart should restore the pristine terrain")
	}
	if sim.State.Terrain.Revision() != 0 {
		t.Fatalf("revision=%d, want 0", sim.State.Terrain.Revision())
	}
	p := sim.Player()
	if p.X != 50 || p.Y != 150 || p.State != StateWalking {
		t.Fatalf("player=(%.0f,%.0f) %s after restart", p.X, p.Y, p.State)
	}
	if !sim.SimLog.HasEntry("input", "restart", "") {
		t.Fatal("restart should be logged")
	}
}

func TestGameState_SummaryMentionsShots(t *testing.T) {
	sim := newFlatSim(t)
	sim.FireAt(80, 120)
	sim.RunUntilLanded(1000)
	s := sim.SimLog.Summary(sim.State)
	want := "Shots: fired=1 terrain=1 off_screen=0"
	if !strings.Contains(s, want+"\n") {
		t.Fatalf("summary missing %q:\n%s", want, s)
	}
}
