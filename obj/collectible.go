package obj

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/catchme/common"
	"github.com/milk9111/catchme/component"
	"github.com/milk9111/catchme/prefabs"
)

// Kind is the collectible variant.
type Kind string

const (
	KindNormal  Kind = "normal"
	KindSpecial Kind = "special"
)

// ParseKind validates a level record's collectible type.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindNormal, KindSpecial:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: collectible type %q", ErrUnknownKind, s)
}

const (
	clipIdle      = "idle"
	clipCollected = "collected"
)

// Collectible is a fruit the player picks up. Once collected it plays the
// collected sequence and is removed by the player a few ticks later.
type Collectible struct {
	spec      prefabs.CollectibleSpec
	rect      common.Rect
	Kind      Kind
	Collected bool
	// Counter is the number of ticks since collection.
	Counter int

	idle      component.Sequence
	collected component.Sequence
	anim      *component.Animation
}

// NewCollectible places a collectible at (x, y). Its rect is the size of a
// collected frame.
func NewCollectible(idle, collected component.Sequence, x, y int, kind Kind, spec prefabs.CollectibleSpec) (*Collectible, error) {
	if len(idle) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingAnimation, clipIdle)
	}
	if len(collected) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingAnimation, clipCollected)
	}
	if x < 0 || y < 0 {
		return nil, fmt.Errorf("%w: collectible at (%d, %d)", ErrInvalidPosition, x, y)
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	w, h := collected.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: collectible frame %dx%d", ErrInvalidSize, w, h)
	}
	return &Collectible{
		spec:      spec,
		rect:      common.R(x, y, w, h),
		Kind:      kind,
		idle:      idle,
		collected: collected,
		anim:      component.NewAnimation(clipCollected, collected, spec.FrameRate),
	}, nil
}

func (c *Collectible) Position() (int, int)   { return c.rect.X, c.rect.Y }
func (c *Collectible) Rect() common.Rect      { return c.rect }
func (c *Collectible) Image() component.Frame { return c.anim.Current() }
func (c *Collectible) Clip() string           { return c.anim.Name() }
func (c *Collectible) Frame() int             { return c.anim.Frame() }

// Score is the value added when the collectible is removed.
func (c *Collectible) Score() int {
	if c.Kind == KindSpecial {
		return c.spec.SpecialScore
	}
	return c.spec.NormalScore
}

func (c *Collectible) cue() component.Cue {
	if c.Kind == KindSpecial {
		return component.CuePickupSpecial
	}
	return component.CuePickup
}

func (c *Collectible) Update(ctx *TickContext) {
	if ctx == nil || ctx.Delta <= 0 {
		return
	}
	c.anim.Update(ctx.Delta)
	if c.Collected {
		c.anim.Set(clipCollected, c.collected)
	} else {
		c.anim.Set(clipIdle, c.idle)
	}
}

func (c *Collectible) Draw(screen *ebiten.Image, _ DrawOptions) {
	drawFrame(screen, c.Image(), c.rect.X, c.rect.Y, false)
}
