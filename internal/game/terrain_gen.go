package game

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

var (
	grassColor = color.NRGBA{R: 70, G: 140, B: 60, A: 255}
	earthColor = color.NRGBA{R: 120, G: 86, B: 52, A: 255}
	rockColor  = color.NRGBA{R: 96, G: 92, B: 88, A: 255}
)

// GenerateTerrain builds rolling hills used when no terrain image is
// configured. Deterministic for a given seed.
func GenerateTerrain(w, h int, seed int64) *image.NRGBA {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- cosmetic terrain only
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	type wave struct{ amp, freq, phase float64 }
	waves := make([]wave, 3)
	for i := range waves {
		waves[i] = wave{
			amp:   float64(h) * (0.04 + rng.Float64()*0.06) / float64(i+1),
			freq:  (1.5 + rng.Float64()*2) * float64(i+1) * 2 * math.Pi / float64(w),
			phase: rng.Float64() * 2 * math.Pi,
		}
	}
	base := float64(h) * 0.55

	for x := 0; x < w; x++ {
		surface := base
		for _, wv := range waves {
			surface += wv.amp * math.Sin(float64(x)*wv.freq+wv.phase)
		}
		top := int(surface)
		for y := max(top, 0); y < h; y++ {
			depth := y - top
			switch {
			case depth < 4:
				img.SetNRGBA(x, y, grassColor)
			case depth < 60:
				img.SetNRGBA(x, y, earthColor)
			default:
				img.SetNRGBA(x, y, rockColor)
			}
		}
	}
	return img
}

// FlatTerrain is solid for every y >= row and empty above it.
func FlatTerrain(w, h, row int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := max(row, 0); y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, earthColor)
		}
	}
	return img
}

// FillRect paints an opaque block onto img, clipped to its bounds.
func FillRect(img *image.NRGBA, x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			img.SetNRGBA(px, py, rockColor)
		}
	}
}
