package obj

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/catchme/common"
	"github.com/milk9111/catchme/component"
)

// drawFrame draws f with its top-left corner at (x, y), upside down when
// flipped. Frames that are not ebiten images are skipped.
func drawFrame(screen *ebiten.Image, f component.Frame, x, y int, flipped bool) {
	img, ok := f.(*ebiten.Image)
	if !ok || img == nil || screen == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if flipped {
		w := float64(img.Bounds().Dx())
		h := float64(img.Bounds().Dy())
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Rotate(math.Pi)
		op.GeoM.Translate(w/2, h/2)
	}
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

func fillRect(screen *ebiten.Image, r common.Rect, clr color.Color) {
	if screen == nil {
		return
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}
