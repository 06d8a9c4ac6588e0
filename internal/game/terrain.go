package game

import (
	"image"
	"image/color"
)

// Terrain is the destructible playfield. The image is the authoritative
// store for every collision query; mask is the occupancy grid that craters
// are carved into and that CommitIfDirty folds back into the image.
type Terrain struct {
	Width  int
	Height int

	img   *image.NRGBA
	mask  []uint8 // row-major: mask[y*Width + x], 1 = solid
	dirty bool
	rev   uint64
}

// AlphaSampler reads terrain alpha at a pixel, returning 0 out of range.
type AlphaSampler interface {
	AlphaAt(x, y int) uint8
}

// Surface answers whether a pixel is ground a walker can stand on.
type Surface interface {
	Solid(x, y int) bool
}

// NewTerrain builds the occupancy grid from the image's alpha channel.
// Index 0 is never marked solid.
func NewTerrain(img *image.NRGBA) *Terrain {
	b := img.Bounds()
	t := &Terrain{
		Width:  b.Dx(),
		Height: b.Dy(),
		img:    img,
	}
	size := t.Width * t.Height
	t.mask = make([]uint8, size)
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			ix := y*t.Width + x
			if ix >= size || ix <= 0 {
				continue
			}
			if t.AlphaAt(x, y) > 0 {
				t.mask[ix] = 1
			}
		}
	}
	return t
}

// Size is the number of grid cells.
func (t *Terrain) Size() int { return t.Width * t.Height }

// Image returns the current terrain image. Callers must not mutate it.
func (t *Terrain) Image() *image.NRGBA { return t.img }

// Revision increases every time CommitIfDirty rewrites the image.
func (t *Terrain) Revision() uint64 { return t.rev }

// Dirty reports whether the grid holds carves not yet folded into the image.
func (t *Terrain) Dirty() bool { return t.dirty }

// AlphaAt returns the image alpha at (x,y), or 0 when out of range.
func (t *Terrain) AlphaAt(x, y int) uint8 {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return 0
	}
	b := t.img.Bounds()
	return t.img.Pix[t.img.PixOffset(b.Min.X+x, b.Min.Y+y)+3]
}

// Solid reports whether (x,y) is fully opaque ground.
func (t *Terrain) Solid(x, y int) bool {
	return t.AlphaAt(x, y) == 255
}

// Occupied reads the cached grid; out-of-range indices are empty.
func (t *Terrain) Occupied(x, y int) bool {
	ix := y*t.Width + x
	if ix < 0 || ix >= t.Size() {
		return false
	}
	return t.mask[ix] == 1
}

// Carve clears the stencil footprint with its top-centre anchored at
// (cx, cy-s.Height). Destination indices outside the grid are skipped, so a
// footprint hanging off a side edge wraps onto the neighbouring row exactly
// as the row-major index does. Returns the number of cells cleared.
func (t *Terrain) Carve(cx, cy int, s *Stencil) int {
	if s == nil {
		return 0
	}
	ox := cx - s.Width/2
	oy := cy - s.Height
	size := t.Size()
	cleared := 0
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			sx := y*s.Width + x
			dx := (oy+y)*t.Width + (ox + x)
			if dx >= size || sx >= len(s.cells) || dx < 0 || sx < 0 {
				continue
			}
			if s.cells[sx] == 1 {
				if t.mask[dx] == 1 {
					cleared++
				}
				t.mask[dx] = 0
			}
		}
	}
	t.dirty = true
	return cleared
}

// CutSquare clears a (2*half)x(2*half) square starting at (cx-half, cy-half).
func (t *Terrain) CutSquare(cx, cy, half int) int {
	size := t.Size()
	cleared := 0
	for y := cy - half; y < cy+half; y++ {
		for x := cx - half; x < cx+half; x++ {
			ix := y*t.Width + x
			if ix >= size || ix <= 0 {
				continue
			}
			if t.mask[ix] == 1 {
				cleared++
			}
			t.mask[ix] = 0
		}
	}
	t.dirty = true
	return cleared
}

// CommitIfDirty rewrites the image so every clear grid cell is transparent.
// It reports whether anything was rewritten.
func (t *Terrain) CommitIfDirty() bool {
	if !t.dirty {
		return false
	}
	b := t.img.Bounds()
	next := image.NewNRGBA(image.Rect(0, 0, t.Width, t.Height))
	for y := 0; y < t.Height; y++ {
		copy(next.Pix[y*next.Stride:y*next.Stride+t.Width*4], t.img.Pix[t.img.PixOffset(b.Min.X, b.Min.Y+y):])
	}
	size := t.Size()
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			ix := y*t.Width + x
			if ix >= size || ix <= 0 {
				continue
			}
			if t.mask[ix] == 0 {
				next.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
	t.img = next
	t.rev++
	t.dirty = false
	return true
}
