package main

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/catchme/assets"
	"github.com/milk9111/catchme/component"
	"github.com/milk9111/catchme/prefabs"
	"github.com/milk9111/catchme/ranking"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const hudTextScale = 3

// hud draws the run clock, the remaining lives and the total score.
type hud struct {
	spec      prefabs.HUDSpec
	face      ebtext.Face
	heart     *ebiten.Image
	heartLost *ebiten.Image
}

func newHUD(spec prefabs.HUDSpec, loader *assets.Loader) *hud {
	h := &hud{spec: spec, face: ebtext.NewGoXFace(basicfont.Face7x13)}
	h.heart = hudImage(loader, spec.Heart, spec.HeartSize)
	h.heartLost = hudImage(loader, spec.HeartLost, spec.HeartSize)
	return h
}

func hudImage(loader *assets.Loader, p string, size prefabs.SizeSpec) *ebiten.Image {
	f, err := loader.Image(p, size.Width, size.Height)
	if err != nil {
		log.Warn("hud image unavailable", "path", p, "err", err)
		return nil
	}
	img, _ := f.(*ebiten.Image)
	return img
}

// Draw renders the HUD for seconds played, the player's lives and score.
// Lost lives show as empty hearts at the end of the row.
func (h *hud) Draw(screen *ebiten.Image, seconds int, lives *component.Lives, score int) {
	clr := h.spec.TextColor.Color
	if clr == nil {
		clr = colornames.Blue
	}
	drawText(screen, h.face, "Time: "+ranking.FormatGameTime(seconds), h.spec.TimeAt, clr)
	drawText(screen, h.face, fmt.Sprintf("Score: %d", score), h.spec.ScoreAt, clr)

	if lives == nil {
		return
	}
	full := lives.Max - lives.Lost()
	for i := range lives.Max {
		x := float64(h.spec.HeartsAt.X + i*h.spec.HeartGap)
		y := float64(h.spec.HeartsAt.Y)
		img, fallback := h.heart, color.Color(colornames.Red)
		if i >= full {
			img, fallback = h.heartLost, colornames.Gray
		}
		if img == nil {
			vector.DrawFilledRect(screen, float32(x), float32(y), 20, 20, fallback, false)
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)
	}
}

func drawText(screen *ebiten.Image, face ebtext.Face, s string, at prefabs.PointSpec, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(hudTextScale, hudTextScale)
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, face, op)
}
