package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedPanelWidth = 300
	feedLineHeight = 14
)

// EventFeed is a ring buffer of recent SimLog entries rendered on-screen.
type EventFeed struct {
	entries []SimLogEntry
	head    int
	count   int
}

// NewEventFeed creates a feed holding at most capacity entries.
func NewEventFeed(capacity int) *EventFeed {
	if capacity <= 0 {
		capacity = 1
	}
	return &EventFeed{entries: make([]SimLogEntry, capacity)}
}

// Add appends an entry, overwriting the oldest when full.
func (f *EventFeed) Add(e SimLogEntry) {
	n := len(f.entries)
	f.entries[f.head] = e
	f.head = (f.head + 1) % n
	if f.count < n {
		f.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []SimLogEntry {
	n := len(f.entries)
	result := make([]SimLogEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + n) % n
		result[i] = f.entries[idx]
	}
	return result
}

// categoryColor picks the marker colour for a feed line.
func categoryColor(category string) color.RGBA {
	switch category {
	case "shot":
		return color.RGBA{R: 230, G: 200, B: 60, A: 255}
	case "impact", "terrain":
		return color.RGBA{R: 210, G: 80, B: 60, A: 255}
	case "state":
		return color.RGBA{R: 80, G: 160, B: 220, A: 255}
	default:
		return color.RGBA{R: 150, G: 150, B: 150, A: 255}
	}
}

// Draw renders the feed in the top-right corner of the screen.
func (f *EventFeed) Draw(screen *ebiten.Image) {
	if f.count == 0 {
		return
	}
	sw := screen.Bounds().Dx()
	x := sw - feedPanelWidth - 8
	h := 18 + f.count*feedLineHeight

	vector.FillRect(screen, float32(x), 8, feedPanelWidth, float32(h), color.RGBA{R: 10, G: 10, B: 24, A: 200}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", x+6, 8)

	y := 8 + 16
	for _, e := range f.Recent() {
		vector.FillRect(screen, float32(x+4), float32(y+5), 3, 5, categoryColor(e.Category), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%4d %s %s", e.Tick, e.Key, e.Value), x+10, y)
		y += feedLineHeight
	}
}
