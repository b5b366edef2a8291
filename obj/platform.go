package obj

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/catchme/common"
	"github.com/milk9111/catchme/component"
)

// Platform is a static tile. Only collidable platforms have edges; the
// others are scenery.
type Platform struct {
	rect     common.Rect
	Type     int
	Collided bool
	img      component.Frame

	top    common.Rect
	bottom common.Rect
	left   common.Rect
	right  common.Rect
}

// NewPlatform places a w x h platform drawn with img.
func NewPlatform(img component.Frame, x, y, w, h, typ int, collided bool) (*Platform, error) {
	if x < 0 || y < 0 {
		return nil, fmt.Errorf("%w: platform at (%d, %d)", ErrInvalidPosition, x, y)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: platform %dx%d", ErrInvalidSize, w, h)
	}
	p := &Platform{
		rect:     common.R(x, y, w, h),
		Type:     typ,
		Collided: collided,
		img:      img,
	}
	if collided {
		p.top = common.R(x, y-1, w, 5)
		p.bottom = common.R(x, y+31, w, 20)
		p.left = common.R(x-1, y, w-44, 49)
		p.right = common.R(x+45, y, 5, 49)
	}
	return p, nil
}

func (p *Platform) Position() (int, int)   { return p.rect.X, p.rect.Y }
func (p *Platform) Rect() common.Rect      { return p.rect }
func (p *Platform) Image() component.Frame { return p.img }

// Top is the strip the player can stand on.
func (p *Platform) Top() common.Rect { return p.top }

// Bottom blocks a rising player.
func (p *Platform) Bottom() common.Rect { return p.bottom }

func (p *Platform) Left() common.Rect  { return p.left }
func (p *Platform) Right() common.Rect { return p.right }

// Update does nothing; platforms are static.
func (p *Platform) Update(*TickContext) {}

func (p *Platform) Draw(screen *ebiten.Image, _ DrawOptions) {
	drawFrame(screen, p.img, p.rect.X, p.rect.Y, false)
}
