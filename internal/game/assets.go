package game

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Assets are the decoded source images, read once at startup.
type Assets struct {
	Terrain *image.NRGBA
	Stencil *Stencil
	Cannon  *image.NRGBA // nil = draw a placeholder
}

// LoadImage decodes a PNG, BMP or WebP file into an NRGBA buffer.
func LoadImage(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

// LoadAssets loads every configured image. A path that is empty or does
// not exist falls back to generated content; any other failure is fatal.
func LoadAssets(cfg Config, logger *slog.Logger) (Assets, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var a Assets

	terrain, err := loadOptional(cfg.TerrainImage)
	if err != nil {
		return a, fmt.Errorf("terrain: %w", err)
	}
	if terrain == nil {
		logger.Info("generating terrain", "path", cfg.TerrainImage, "seed", cfg.TerrainSeed)
		terrain = GenerateTerrain(cfg.ScreenWidth, cfg.ScreenHeight, cfg.TerrainSeed)
	}
	a.Terrain = terrain

	bomb, err := loadOptional(cfg.BombImage)
	if err != nil {
		return a, fmt.Errorf("bomb stencil: %w", err)
	}
	if bomb == nil {
		logger.Info("using circle stencil", "path", cfg.BombImage, "radius", cfg.CraterRadius)
		a.Stencil = CircleStencil(cfg.CraterRadius)
	} else {
		a.Stencil = NewStencil(bomb)
	}

	a.Cannon, err = loadOptional(cfg.CannonImage)
	if err != nil {
		return a, fmt.Errorf("cannon: %w", err)
	}

	logger.Debug("assets loaded",
		"terrain", fmt.Sprintf("%dx%d", a.Terrain.Bounds().Dx(), a.Terrain.Bounds().Dy()),
		"stencil", fmt.Sprintf("%dx%d", a.Stencil.Width, a.Stencil.Height),
		"cannon", a.Cannon != nil)
	return a, nil
}

func loadOptional(path string) (*image.NRGBA, error) {
	if path == "" {
		return nil, nil
	}
	img, err := LoadImage(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return img, err
}

// toNRGBA copies any image into a zero-origin NRGBA buffer.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	return dst
}

func cloneNRGBA(src *image.NRGBA) *image.NRGBA {
	return toNRGBA(src)
}
