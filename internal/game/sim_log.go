package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded simulation event.
type SimLogEntry struct {
	Tick     int
	Actor    string  // "P1" for the player, "ball", or "--" for terrain/global events
	Category string  // state, shot, impact, terrain, input
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] P1   state     change           walking → falling
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// SimLog collects structured events. It is unbounded and machine-readable;
// the on-screen EventFeed is the bounded view.
type SimLog struct {
	entries []SimLogEntry
	verbose bool

	// Sink, when set, sees every recorded entry as it is added.
	Sink func(SimLogEntry)
}

// NewSimLog creates a SimLog. If verbose is true, per-tick position and
// velocity entries are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, actor, category, key, value string, numVal float64) {
	e := SimLogEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	}
	sl.entries = append(sl.entries, e)
	if sl.Sink != nil {
		sl.Sink(e)
	}
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, actor, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, actor, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// SumNum adds up NumVal over entries matching category and key.
func (sl *SimLog) SumNum(category, key string) float64 {
	sum := 0.0
	for _, e := range sl.Filter(category, key) {
		sum += e.NumVal
	}
	return sum
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns a log string filtered to a tick range.
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	var sb strings.Builder
	for _, e := range sl.FilterTickRange(fromTick, toTick) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the game state.
func (sl *SimLog) Summary(gs *GameState) string {
	var sb strings.Builder
	p := gs.Player
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", gs.Tick)
	fmt.Fprintf(&sb, "Player: (%.0f,%.0f) %s dir=%+.0f fallen=%d true_fallen=%d\n",
		p.X, p.Y, p.State, p.Dir, p.Fallen, p.TrueFallen)
	fmt.Fprintf(&sb, "Shots: fired=%d terrain=%d off_screen=%d\n",
		sl.CountCategory("shot", "fired"),
		sl.CountCategory("impact", TermTerrain.String()),
		sl.CountCategory("impact", TermLeft.String())+
			sl.CountCategory("impact", TermRight.String())+
			sl.CountCategory("impact", TermBottom.String()))
	fmt.Fprintf(&sb, "Terrain: carved=%.0f px revision=%d\n",
		sl.SumNum("terrain", "carve")+sl.SumNum("terrain", "dig"), gs.Terrain.Revision())
	return sb.String()
}
