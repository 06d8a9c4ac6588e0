package game

import (
	"math"
	"testing"
)

// failSampler fails the test if the terrain is consulted at all.
type failSampler struct{ t *testing.T }

func (f failSampler) AlphaAt(x, y int) uint8 {
	f.t.Fatalf("terrain sampled at (%d,%d) for an off-screen ball", x, y)
	return 0
}

type emptySampler struct{}

func (emptySampler) AlphaAt(int, int) uint8 { return 0 }

func TestCheck_LeftEdgeBeforeTerrain(t *testing.T) {
	b := Projectile{X: -11, Y: 100, Radius: 10}
	ph := Physics{Gravity: defaultGravity, FPS: defaultFPS, ScreenWidth: 640, ScreenHeight: 480}
	if term := b.Check(ph, failSampler{t}); term != TermLeft {
		t.Fatalf("term=%s, want left", term)
	}
}

func TestCheck_BoundaryOrder(t *testing.T) {
	ph := Physics{ScreenWidth: 100, ScreenHeight: 100}
	cases := []struct {
		name string
		x, y float64
		want Termination
	}{
		{"left wins over bottom", -20, 150, TermLeft},
		{"bottom", 50, 100, TermBottom},
		{"bottom wins over right", 150, 120, TermBottom},
		{"right", 111, 50, TermRight},
		{"right edge touching", 110, 50, TermNone},
		{"in the air", 50, 50, TermNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Projectile{X: tc.x, Y: tc.y, Radius: 10}
			if got := b.Check(ph, emptySampler{}); got != tc.want {
				t.Fatalf("term=%s, want %s", got, tc.want)
			}
		})
	}
}

func TestUpdate_SeedsVelocityOnce(t *testing.T) {
	ph := Physics{Gravity: 9.81, FPS: 60, ScreenWidth: 1000, ScreenHeight: 1000}
	b := Projectile{}
	b.Reset(100, 500)

	b.Update(Shot{Angle: 0, Power: 60}, ph, emptySampler{})
	if !b.Active {
		t.Fatal("ball should be active after first update")
	}
	if math.Abs(b.X-103) > 1e-9 || math.Abs(b.Y-500) > 1e-9 {
		t.Fatalf("pos=(%.3f,%.3f), want (103,500)", b.X, b.Y)
	}
	if math.Abs(b.VY-9.81/60) > 1e-9 {
		t.Fatalf("vy=%.4f, want one tick of gravity", b.VY)
	}

	// A later shot must not reseed a ball already in flight.
	b.Update(Shot{Angle: 90, Power: 600}, ph, emptySampler{})
	if math.Abs(b.X-106) > 1e-9 {
		t.Fatalf("x=%.3f, want 106", b.X)
	}
}

func TestUpdate_LeftTeamMirrorsVelocity(t *testing.T) {
	ph := Physics{Gravity: 0, FPS: 60, ScreenWidth: 1000, ScreenHeight: 1000}
	b := Projectile{}
	b.Reset(500, 500)

	b.Update(Shot{Angle: 45, Power: 100, LeftTeam: true}, ph, emptySampler{})
	want := math.Cos(math.Pi/4) * 5
	if math.Abs(b.VX+want) > 1e-9 || math.Abs(b.VY+want) > 1e-9 {
		t.Fatalf("v=(%.4f,%.4f), want (%.4f,%.4f)", b.VX, b.VY, -want, -want)
	}
	if b.X >= 500 || b.Y >= 500 {
		t.Fatalf("ball should move up and left, at (%.2f,%.2f)", b.X, b.Y)
	}
}

func TestUpdate_StraightUp(t *testing.T) {
	ph := Physics{Gravity: 0, FPS: 60, ScreenWidth: 1000, ScreenHeight: 1000}
	b := Projectile{}
	b.Reset(500, 500)
	b.Update(Shot{Angle: 90, Power: 60}, ph, emptySampler{})
	if math.Abs(b.Y-497) > 1e-9 || math.Abs(b.X-500) > 1e-9 {
		t.Fatalf("pos=(%.3f,%.3f), want (500,497)", b.X, b.Y)
	}
}

func TestUpdate_HitsColumnOnExactTick(t *testing.T) {
	img := FlatTerrain(40, 40, 40)
	FillRect(img, 20, 0, 20, 40)
	tr := NewTerrain(img)
	ph := Physics{Gravity: 0, FPS: 60, ScreenWidth: 40, ScreenHeight: 40}

	b := Projectile{X: 10, Y: 20, VX: 1, Active: true}
	tick := 0
	term := TermNone
	for term == TermNone && tick < 100 {
		tick++
		term = b.Update(Shot{}, ph, tr)
	}
	if term != TermTerrain {
		t.Fatalf("term=%s, want terrain", term)
	}
	if tick != 10 || b.X != 20 {
		t.Fatalf("hit at tick %d x=%.1f, want tick 10 x=20", tick, b.X)
	}

	s := carveStencil()
	cx, cy := b.CraterCenter(s.Height)
	if cx != 20 || cy != 22 {
		t.Fatalf("crater centre=(%d,%d), want (20,22)", cx, cy)
	}
	// Footprint spans x 18..21, y 18..21; only the column x >= 20 was solid.
	if n := tr.Carve(cx, cy, s); n != 6 {
		t.Fatalf("cleared=%d, want 6", n)
	}
	for _, c := range [][2]int{{20, 18}, {20, 19}, {21, 19}, {20, 20}, {21, 20}, {20, 21}} {
		if tr.Occupied(c[0], c[1]) {
			t.Fatalf("cell (%d,%d) should be cleared", c[0], c[1])
		}
	}
	for _, c := range [][2]int{{21, 18}, {21, 21}, {22, 19}, {20, 17}, {20, 22}} {
		if !tr.Occupied(c[0], c[1]) {
			t.Fatalf("cell (%d,%d) should be retained", c[0], c[1])
		}
	}
}

func TestUpdate_RadiusOffsetsCollisionSample(t *testing.T) {
	img := FlatTerrain(40, 40, 40)
	FillRect(img, 20, 0, 20, 40)
	tr := NewTerrain(img)
	ph := Physics{FPS: 60, ScreenWidth: 40, ScreenHeight: 40}

	b := Projectile{X: 10, Y: 20, VX: 1, Radius: 2, Active: true}
	tick := 0
	for b.Update(Shot{}, ph, tr) == TermNone {
		tick++
		if tick > 100 {
			t.Fatal("ball never hit the column")
		}
	}
	if b.X != 18 {
		t.Fatalf("x=%.1f, want 18 (leading edge at 20)", b.X)
	}
}
