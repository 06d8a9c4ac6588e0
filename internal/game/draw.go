package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	skyColor    = color.RGBA{R: 0, G: 0, B: 52, A: 255}
	ballColor   = color.RGBA{R: 190, G: 33, B: 55, A: 255} // maroon
	aimColor    = color.RGBA{R: 255, G: 255, B: 255, A: 100}
	cannonColor = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	impactColor = color.RGBA{R: 255, G: 160, B: 40, A: 200}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	g.syncTerrainTexture()

	if g.worldBuf == nil {
		g.worldBuf = ebiten.NewImage(g.cfg.ScreenWidth, g.cfg.ScreenHeight)
	}
	g.worldBuf.Clear()
	g.drawWorld(g.worldBuf)

	var blit ebiten.DrawImageOptions
	blit.GeoM.Scale(g.camZoom, g.camZoom)
	screen.DrawImage(g.worldBuf, &blit)

	if g.showHUD {
		g.drawHUD(screen)
		g.feed.Draw(screen)
	}
}

// syncTerrainTexture uploads the terrain image whenever a carve has been
// committed since the last upload or the round was restarted.
func (g *Game) syncTerrainTexture() {
	t := g.state.Terrain
	if g.terrainTex != nil && g.texSrc == t && g.texRev == t.Revision() {
		return
	}
	if g.terrainTex == nil || g.terrainTex.Bounds().Dx() != t.Width || g.terrainTex.Bounds().Dy() != t.Height {
		g.terrainTex = ebiten.NewImage(t.Width, t.Height)
	}
	// WritePixels wants premultiplied RGBA.
	img := t.Image()
	pix := make([]byte, len(img.Pix))
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := uint16(img.Pix[i+3])
		pix[i] = byte(uint16(img.Pix[i]) * a / 255)
		pix[i+1] = byte(uint16(img.Pix[i+1]) * a / 255)
		pix[i+2] = byte(uint16(img.Pix[i+2]) * a / 255)
		pix[i+3] = byte(a)
	}
	g.terrainTex.WritePixels(pix)
	g.texSrc = t
	g.texRev = t.Revision()
}

func (g *Game) drawWorld(dst *ebiten.Image) {
	gs := g.state
	p := gs.Player

	dst.DrawImage(g.terrainTex, nil)
	g.drawCannon(dst, p)

	if p.ImpactX >= 0 && p.ImpactY >= 0 {
		vector.StrokeCircle(dst, float32(p.ImpactX), float32(p.ImpactY), 4, 1, impactColor, false)
	}
	if gs.Ball.Active {
		vector.FillCircle(dst, float32(gs.Ball.X), float32(gs.Ball.Y), float32(gs.Ball.Radius), ballColor, true)
	}
	if !gs.BallOnAir {
		g.drawAimTriangle(dst, p)
	}
}

// drawCannon draws the sprite with its base 4px below the foot position.
func (g *Game) drawCannon(dst *ebiten.Image, p *Player) {
	if g.cannonImg == nil && g.cannonSrc != nil {
		g.cannonImg = ebiten.NewImageFromImage(g.cannonSrc)
	}
	if g.cannonImg == nil {
		w, h := float32(p.Width), float32(p.Height)
		vector.FillRect(dst, float32(p.X)-w/2, float32(p.Y)-h/2, w, h/2, cannonColor, false)
		vector.FillCircle(dst, float32(p.X), float32(p.Y)-h/2, w/4, cannonColor, true)
		return
	}
	b := g.cannonImg.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(p.X-float64(b.Dx()/2), p.Y-float64(b.Dy()-4))
	dst.DrawImage(g.cannonImg, &op)
}

// drawAimTriangle fans from the cannon body to the aim point.
func (g *Game) drawAimTriangle(dst *ebiten.Image, p *Player) {
	sx, sy := float32(p.Width), float32(p.Height)
	px, py := float32(p.X), float32(p.Y)

	var path vector.Path
	path.MoveTo(px-sx/2, py-sy/4)
	path.LineTo(px+sx*2, py+sy/4)
	path.LineTo(float32(p.AimX), float32(p.AimY))
	path.Close()

	opts := &vector.DrawPathOptions{AntiAlias: true}
	opts.ColorScale.ScaleWithColor(aimColor)
	vector.FillPath(dst, &path, &vector.FillOptions{}, opts)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	p := g.state.Player
	lines := []string{
		fmt.Sprintf("state: %s  pos: (%.0f,%.0f)  fallen: %d/%d", p.State, p.X, p.Y, p.Fallen, p.TrueFallen),
		fmt.Sprintf("aim: %d deg  power: %d  last: %d deg / %d", p.AimAngle, p.AimPower, p.PrevAngle, p.PrevPower),
		"arrows walk  LMB fire  RMB dig  PgUp/PgDn zoom  C copy  R restart  H hud",
	}
	if g.camZoom != 1 {
		lines = append(lines, fmt.Sprintf("zoom: %.0fx", g.camZoom))
	}
	if g.status != "" {
		lines = append(lines, g.status)
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 10, 10+i*16)
	}
}
