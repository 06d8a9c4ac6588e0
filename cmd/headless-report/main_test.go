package main

import (
	"strings"
	"testing"

	"github.com/Garsondee/Cannons/internal/game"
)

func TestPlanShots_Deterministic(t *testing.T) {
	a := planShots(7, 6, 200)
	b := planShots(7, 6, 200)
	if len(a) != 6 {
		t.Fatalf("expected 6 plans, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("plan %d differs between identical seeds: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestPlanShots_Bounds(t *testing.T) {
	for i, p := range planShots(3, 50, 200) {
		if p.angle < 15 || p.angle >= 75 {
			t.Fatalf("plan %d angle %.1f outside [15,75)", i, p.angle)
		}
		if p.power < 150 || p.power > 250 {
			t.Fatalf("plan %d power %d outside [150,250]", i, p.power)
		}
		if p.left != (i%2 == 1) {
			t.Fatalf("plan %d side: left=%v", i, p.left)
		}
	}
}

func TestPlanShots_TinyPowerStaysPositive(t *testing.T) {
	for i, p := range planShots(1, 10, 1) {
		if p.power < 1 {
			t.Fatalf("plan %d power %d, want >= 1", i, p.power)
		}
	}
}

func TestFormatTerms(t *testing.T) {
	got := formatTerms(map[game.Termination]int{
		game.TermRight:   1,
		game.TermTerrain: 3,
	})
	if got != "terrain=3 right=1" {
		t.Fatalf("unexpected format: %q", got)
	}
	if formatTerms(nil) != "none" {
		t.Fatalf("empty terms should format as none")
	}
}

func TestAvgString(t *testing.T) {
	if s := avgString(nil); s != "n/a" {
		t.Fatalf("expected n/a, got %s", s)
	}
	if s := avgString([]int{10, 20}); s != "15.0" {
		t.Fatalf("expected 15.0, got %s", s)
	}
}

func TestRunDuel_FlatGroundAllShotsResolve(t *testing.T) {
	rs, log := runDuel(1, 42, 3, 180, 640, 480)
	if rs.runID == "" {
		t.Fatal("run should carry an id")
	}
	resolved := 0
	for _, n := range rs.terms {
		resolved += n
	}
	if resolved+rs.misfires != rs.shots {
		t.Fatalf("shots=%d but resolved=%d misfires=%d\n%s", rs.shots, resolved, rs.misfires, log)
	}
	if rs.terms[game.TermNone] != 0 {
		t.Fatalf("a shot never landed:\n%s", log)
	}
	if !strings.Contains(log, "shot") && rs.shots > rs.misfires {
		t.Fatalf("log missing shot entries:\n%s", log)
	}
}
