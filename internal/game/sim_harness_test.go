package game

import "testing"

func TestHeadlessSim_Defaults(t *testing.T) {
	sim := NewHeadlessSim(WithScreenSize(320, 240), WithSeed(9))
	if sim.State.Terrain.Width != 320 || sim.State.Terrain.Height != 240 {
		t.Fatalf("terrain=%dx%d", sim.State.Terrain.Width, sim.State.Terrain.Height)
	}
	want := 2*sim.Config.CraterRadius + 1
	if sim.State.Stencil.Width != want {
		t.Fatalf("stencil width=%d, want %d", sim.State.Stencil.Width, want)
	}
	if term, ticks := sim.RunUntilLanded(10); term != TermNone || ticks != -1 {
		t.Fatalf("no ball in the air: got %s/%d", term, ticks)
	}
}

func TestHeadlessSim_SameSeedSameTerrain(t *testing.T) {
	a := NewHeadlessSim(WithScreenSize(100, 80), WithSeed(3))
	b := NewHeadlessSim(WithScreenSize(100, 80), WithSeed(3))
	for y := 0; y < 80; y++ {
		for x := 0; x < 100; x++ {
			if a.State.Terrain.AlphaAt(x, y) != b.State.Terrain.AlphaAt(x, y) {
				t.Fatalf("terrain differs at (%d,%d)", x, y)
			}
		}
	}
}

func TestHeadlessSim_WithWall(t *testing.T) {
	sim := NewHeadlessSim(
		WithWall(10, 10, 5, 5),
		WithScreenSize(50, 50),
		WithFlatGround(40),
	)
	if !sim.State.Terrain.Solid(12, 12) {
		t.Fatal("wall should be painted after the flat ground is built")
	}
	if sim.State.Terrain.Solid(20, 20) {
		t.Fatal("open air should stay empty")
	}
}

func TestHeadlessSim_FireByAngle(t *testing.T) {
	sim := newFlatSim(t)
	if !sim.Fire(45, 42, false) {
		t.Fatal("shot should fire")
	}
	p := sim.Player()
	if p.PrevX != 80 || p.PrevY != 120 {
		t.Fatalf("aim point=(%.0f,%.0f), want (80,120)", p.PrevX, p.PrevY)
	}
	snap := sim.Snapshot()
	if !snap.BallOnAir || snap.State != StateStanding || snap.Tick != sim.CurrentTick() {
		t.Fatalf("snapshot=%+v", snap)
	}
}

func TestHeadlessSim_RunUntil(t *testing.T) {
	sim := NewHeadlessSim(
		WithScreenSize(100, 100),
		WithFlatGround(60),
		WithPlayerAt(50, 40),
	)
	tick := sim.RunUntil(func(hs *HeadlessSim) bool {
		return hs.Player().State == StateWalking
	}, 200)
	if tick < 0 {
		t.Fatalf("player never landed:\n%s", sim.SimLog.Format())
	}
	if y := sim.Player().Y; y != 60 {
		t.Fatalf("landed at y=%.0f, want 60", y)
	}
}

func TestParseTermination(t *testing.T) {
	for _, term := range []Termination{TermLeft, TermBottom, TermRight, TermTerrain} {
		if got := parseTermination(term.String()); got != term {
			t.Fatalf("parse(%q)=%s", term.String(), got)
		}
	}
	if parseTermination("sideways") != TermNone {
		t.Fatal("unknown names map to none")
	}
}
