package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/catchme/common"
	"github.com/milk9111/catchme/component"
	"github.com/milk9111/catchme/prefabs"
	"golang.org/x/image/colornames"
)

// Projectile is a shot travelling horizontally at a constant speed. The sign
// of Speed is its direction.
type Projectile struct {
	rect  common.Rect
	Speed int
	alive bool
	img   component.Frame
}

// NewProjectile creates a live shot centered on (cx, cy).
func NewProjectile(cx, cy int, spec prefabs.ProjectileSpec, img component.Frame) *Projectile {
	return &Projectile{
		rect:  common.Centered(cx, cy, spec.Size.Width, spec.Size.Height),
		Speed: spec.Speed,
		alive: true,
		img:   img,
	}
}

func (p *Projectile) Position() (int, int)   { return p.rect.X, p.rect.Y }
func (p *Projectile) Rect() common.Rect      { return p.rect }
func (p *Projectile) Image() component.Frame { return p.img }
func (p *Projectile) Alive() bool            { return p != nil && p.alive }

// Kill ends the projectile; its owner drops it on the same tick.
func (p *Projectile) Kill() { p.alive = false }

func (p *Projectile) Update(ctx *TickContext) {
	if ctx == nil || !p.alive {
		return
	}
	scene := ctx.scene()

	for _, e := range scene.Enemies {
		if e != nil && p.rect.Intersects(e.body) {
			e.wasHit = true
			p.Kill()
			ctx.emit(component.CueEnemyHit)
		}
	}
	for _, t := range scene.Traps {
		if t != nil && p.rect.Intersects(t.rect) {
			p.Kill()
		}
	}
	for _, pl := range scene.Platforms {
		if pl != nil && pl.Collided && p.rect.Intersects(pl.rect) {
			p.Kill()
		}
	}

	p.rect = p.rect.Translate(p.Speed, 0)
	if p.rect.Right() <= 0 || p.rect.X >= common.Width {
		p.Kill()
	}
}

func (p *Projectile) Draw(screen *ebiten.Image, opts DrawOptions) {
	if !p.Alive() {
		return
	}
	if p.img == nil {
		fillRect(screen, p.rect, colornames.Orange)
		return
	}
	drawFrame(screen, p.img, p.rect.X, p.rect.Y, false)
}
