package obj

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/catchme/common"
	"github.com/milk9111/catchme/component"
	"github.com/milk9111/catchme/prefabs"
	"golang.org/x/image/colornames"
)

// Trap is a static animated hazard with a circular hit area.
type Trap struct {
	rect   common.Rect
	Scale  float64
	Radius int
	anim   *component.Animation
}

// NewTrap places a trap at (x, y). Large traps (spec.LargeScale) use the
// larger hit radius.
func NewTrap(seq component.Sequence, x, y int, scale float64, spec prefabs.TrapSpec) (*Trap, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("%w: trap", ErrMissingAnimation)
	}
	if x < 0 || y < 0 {
		return nil, fmt.Errorf("%w: trap at (%d, %d)", ErrInvalidPosition, x, y)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("%w: trap scale %v", ErrInvalidScale, scale)
	}
	w, h := seq.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: trap frame %dx%d", ErrInvalidSize, w, h)
	}
	radius := spec.Radius
	if scale == spec.LargeScale {
		radius = spec.LargeRadius
	}
	return &Trap{
		rect:   common.R(x, y, w, h),
		Scale:  scale,
		Radius: radius,
		anim:   component.NewAnimation("trap", seq, spec.FrameRate),
	}, nil
}

func (t *Trap) Position() (int, int)   { return t.rect.X, t.rect.Y }
func (t *Trap) Rect() common.Rect      { return t.rect }
func (t *Trap) Image() component.Frame { return t.anim.Current() }
func (t *Trap) Frame() int             { return t.anim.Frame() }

func (t *Trap) center() cp.Vector {
	return cp.Vector{X: float64(t.rect.CenterX()), Y: float64(t.rect.CenterY())}
}

// HasCollided reports whether the player's body center lies within the sum
// of both radii of the trap center.
func (t *Trap) HasCollided(p *Player) bool {
	if t == nil || p == nil {
		return false
	}
	body := cp.Vector{X: float64(p.body.CenterX()), Y: float64(p.body.CenterY())}
	return t.center().Distance(body) < float64(t.Radius+p.Radius())
}

func (t *Trap) Update(ctx *TickContext) {
	if ctx == nil || ctx.Delta <= 0 {
		return
	}
	t.anim.Update(ctx.Delta)
}

func (t *Trap) Draw(screen *ebiten.Image, opts DrawOptions) {
	drawFrame(screen, t.Image(), t.rect.X, t.rect.Y, false)
	if opts.Debug && screen != nil {
		c := t.center()
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(t.Radius), 1, colornames.Red, false)
	}
}
