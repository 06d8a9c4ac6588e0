package game

import (
	"image"
	"strings"
)

// Stencil is the binary crater shape carved on impact. Read-only after
// construction.
type Stencil struct {
	Width  int
	Height int
	cells  []uint8
}

// NewStencil marks every pixel with non-zero alpha. Index 0 stays clear,
// same as the terrain mask.
func NewStencil(img image.Image) *Stencil {
	b := img.Bounds()
	s := &Stencil{Width: b.Dx(), Height: b.Dy()}
	size := s.Width * s.Height
	s.cells = make([]uint8, size)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			ix := y*s.Width + x
			if ix >= size || ix <= 0 {
				continue
			}
			if _, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA(); a != 0 {
				s.cells[ix] = 1
			}
		}
	}
	return s
}

// CircleStencil is the fallback crater: a filled disc of the given radius
// in a (2r+1)-square.
func CircleStencil(radius int) *Stencil {
	d := 2*radius + 1
	s := &Stencil{Width: d, Height: d, cells: make([]uint8, d*d)}
	r2 := radius * radius
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			ix := y*d + x
			if ix <= 0 {
				continue
			}
			dx, dy := x-radius, y-radius
			if dx*dx+dy*dy <= r2 {
				s.cells[ix] = 1
			}
		}
	}
	return s
}

// ParseStencil builds a stencil from rows of '#' (solid) and '.' (clear).
// Used by tests and the headless harness.
func ParseStencil(rows ...string) *Stencil {
	s := &Stencil{Height: len(rows)}
	for _, r := range rows {
		if len(r) > s.Width {
			s.Width = len(r)
		}
	}
	s.cells = make([]uint8, s.Width*s.Height)
	for y, r := range rows {
		for x, ch := range r {
			ix := y*s.Width + x
			if ix <= 0 {
				continue
			}
			if ch == '#' {
				s.cells[ix] = 1
			}
		}
	}
	return s
}

// At reports whether the stencil cell is solid.
func (s *Stencil) At(x, y int) bool {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return false
	}
	return s.cells[y*s.Width+x] == 1
}

// String renders the stencil as '#'/'.' rows.
func (s *Stencil) String() string {
	var sb strings.Builder
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if s.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
