package main

import (
	"flag"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/Garsondee/Cannons/internal/game"
)

const (
	settleTicks = 600
	flightTicks = 3000
)

type runStats struct {
	runIndex int
	runID    string
	seed     int64

	shots       int
	misfires    int
	terms       map[game.Termination]int
	carved      int
	flightTicks []int

	finalState game.LocomotionState
	finalX     float64
	finalY     float64
	fallen     int
	trueFallen int
	stateLog   int
}

type shotPlan struct {
	angle float64
	power int
	left  bool
}

func main() {
	var runs int
	var shots int
	var seedBase int64
	var seedStep int64
	var power int
	var width int
	var height int
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless duels")
	flag.IntVar(&shots, "shots", 8, "shots fired per duel")
	flag.Int64Var(&seedBase, "seed-base", 42, "terrain and aim seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&power, "power", 220, "base shot power (pointer distance in pixels)")
	flag.IntVar(&width, "width", 1024, "playfield width")
	flag.IntVar(&height, "height", 768, "playfield height")
	flag.BoolVar(&verbose, "verbose", false, "print the full event log of every run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if shots <= 0 {
		fmt.Println("error: -shots must be > 0")
		return
	}
	if width <= 0 || height <= 0 {
		fmt.Println("error: -width and -height must be > 0")
		return
	}

	fmt.Printf("=== Headless Artillery Report ===\n")
	fmt.Printf("runs=%d shots=%d power=%d size=%dx%d seed_base=%d seed_step=%d\n\n",
		runs, shots, power, width, height, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, log := runDuel(i+1, seed, shots, power, width, height)
		all = append(all, stats)
		printRun(stats)
		if verbose {
			fmt.Print(log)
			fmt.Println()
		}
	}

	printAggregate(all)
}

// planShots scripts a deterministic volley: elevations in [15,75) degrees,
// alternating sides, power jittered by up to a quarter either way.
func planShots(seed int64, n, basePower int) []shotPlan {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- reproducible report
	plans := make([]shotPlan, n)
	for i := range plans {
		jitter := basePower / 4
		p := basePower
		if jitter > 0 {
			p += rng.Intn(2*jitter+1) - jitter
		}
		plans[i] = shotPlan{
			angle: 15 + rng.Float64()*60,
			power: max(p, 1),
			left:  i%2 == 1,
		}
	}
	return plans
}

func runDuel(runIndex int, seed int64, shots, power, width, height int) (runStats, string) {
	sim := game.NewHeadlessSim(
		game.WithScreenSize(width, height),
		game.WithSeed(seed),
		game.WithPlayerAt(float64(width)/3, float64(height)/4),
	)
	sim.RunUntil(func(hs *game.HeadlessSim) bool {
		s := hs.Player().State
		return s == game.StateWalking || s == game.StateDead
	}, settleTicks)

	rs := runStats{
		runIndex: runIndex,
		runID:    uuid.NewString(),
		seed:     seed,
		terms:    map[game.Termination]int{},
	}
	for _, plan := range planShots(seed, shots, power) {
		if !sim.Player().Alive() {
			break
		}
		rs.shots++
		if !sim.Fire(plan.angle, plan.power, plan.left) {
			rs.misfires++
			continue
		}
		term, ticks := sim.RunUntilLanded(flightTicks)
		rs.terms[term]++
		if ticks >= 0 {
			rs.flightTicks = append(rs.flightTicks, ticks)
		}
		// Let the cannon react to the new crater before the next shot.
		sim.RunTicks(20)
	}

	p := sim.Player()
	rs.carved = int(sim.SimLog.SumNum("terrain", "carve"))
	rs.finalState = p.State
	rs.finalX, rs.finalY = p.X, p.Y
	rs.fallen = p.Fallen
	rs.trueFallen = p.TrueFallen
	rs.stateLog = sim.SimLog.CountCategory("state", "change")
	return rs, sim.SimLog.Format()
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d id=%s) ---\n", rs.runIndex, rs.seed, rs.runID)
	fmt.Printf("shots: fired=%d misfires=%d outcomes=%s\n", rs.shots, rs.misfires, formatTerms(rs.terms))
	fmt.Printf("terrain: carved=%s px  avg_flight=%s ticks\n", humanize.Comma(int64(rs.carved)), avgString(rs.flightTicks))
	fmt.Printf("player: state=%s pos=(%.0f,%.0f) fallen=%d true_fallen=%d state_changes=%d\n",
		rs.finalState, rs.finalX, rs.finalY, rs.fallen, rs.trueFallen, rs.stateLog)
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalShots := 0
	totalMisfires := 0
	totalCarved := 0
	terms := map[game.Termination]int{}
	var flights []int
	finalStates := map[string]int{}

	for _, rs := range all {
		totalShots += rs.shots
		totalMisfires += rs.misfires
		totalCarved += rs.carved
		for t, n := range rs.terms {
			terms[t] += n
		}
		flights = append(flights, rs.flightTicks...)
		finalStates[rs.finalState.String()]++
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d shots=%d misfires=%d\n", len(all), totalShots, totalMisfires)
	fmt.Printf("outcomes=%s terrain_hit_rate=%.0f%%\n", formatTerms(terms), pct(terms[game.TermTerrain], totalShots-totalMisfires))
	fmt.Printf("carved_total=%s px avg_per_run=%s px avg_flight=%s ticks\n",
		humanize.Comma(int64(totalCarved)), humanize.Comma(int64(avg(totalCarved, len(all)))), avgString(flights))
	fmt.Printf("final_states=%s\n", joinCounts(finalStates))
}

func formatTerms(terms map[game.Termination]int) string {
	order := []game.Termination{game.TermTerrain, game.TermLeft, game.TermRight, game.TermBottom, game.TermNone}
	parts := make([]string, 0, len(order))
	for _, t := range order {
		if n := terms[t]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", t, n))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func pct(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func avgString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, m[k])
	}
	return strings.Join(parts, ",")
}
