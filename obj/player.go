package obj

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/catchme/common"
	"github.com/milk9111/catchme/component"
	"github.com/milk9111/catchme/prefabs"
	"golang.org/x/image/colornames"
)

// playerMotion is the animation family the player is in. The jump flag is
// tracked separately: walking mid-air keeps the player jumping.
type playerMotion int

const (
	motionStill playerMotion = iota
	motionWalking
	motionJumping
)

func (m playerMotion) String() string {
	switch m {
	case motionWalking:
		return "walking"
	case motionJumping:
		return "jumping"
	default:
		return "still"
	}
}

var playerClips = [...][2]string{
	motionStill:   {ClipStillL, ClipStillR},
	motionWalking: {ClipWalkingL, ClipWalkingR},
	motionJumping: {ClipJumpingL, ClipJumpingR},
}

func playerClip(m playerMotion, dir common.Direction) string {
	if dir == common.Left {
		return playerClips[m][0]
	}
	return playerClips[m][1]
}

type Player struct {
	spec  prefabs.PlayerSpec
	clips Clips
	anim  *component.Animation

	rect common.Rect
	feet common.Rect
	body common.Rect

	MoveX     int
	MoveY     int
	Direction common.Direction
	Score     int
	Lives     *component.Lives
	Falling   bool
	CanShoot  bool

	motion     playerMotion
	jumping    bool
	shooting   bool
	jumpStartY int
	moveTimer  component.Accumulator

	Projectiles []*Projectile
	shot        prefabs.ProjectileSpec
	shotImage   component.Frame
}

// NewPlayer places a player with its top-left corner at (x, y). Every
// still, walking and jumping clip must be present; the sprite size is taken
// from the first still_r frame.
func NewPlayer(clips Clips, x, y int, spec prefabs.PlayerSpec) (*Player, error) {
	if err := clips.require(ClipStillR, ClipStillL, ClipWalkingR, ClipWalkingL, ClipJumpingR, ClipJumpingL); err != nil {
		return nil, err
	}
	if x < 0 || y < 0 {
		return nil, fmt.Errorf("%w: player at (%d, %d)", ErrInvalidPosition, x, y)
	}
	w, h := clips[ClipStillR].Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: player frame %dx%d", ErrInvalidSize, w, h)
	}

	p := &Player{
		spec:      spec,
		clips:     clips,
		anim:      component.NewAnimation(ClipStillR, clips[ClipStillR], spec.FrameRate),
		rect:      common.R(x, y, w, h),
		feet:      common.R(x+20, y+h-3, w/3+4, 4),
		body:      common.R(x+15, y+13, w/2, 40),
		Direction: common.Right,
		Lives:     component.NewLives(spec.Lives),
		moveTimer: component.Accumulator{Rate: spec.MoveRate},
		shot:      prefabs.DefaultProjectileSpec(),
	}
	return p, nil
}

// SetProjectile configures the shots fired once shooting is armed.
func (p *Player) SetProjectile(spec prefabs.ProjectileSpec, img component.Frame) {
	p.shot = spec
	p.shotImage = img
}

func (p *Player) Position() (int, int) { return p.rect.X, p.rect.Y }
func (p *Player) Rect() common.Rect    { return p.rect }
func (p *Player) Feet() common.Rect    { return p.feet }
func (p *Player) Body() common.Rect    { return p.body }
func (p *Player) Jumping() bool        { return p.jumping }
func (p *Player) Clip() string         { return p.anim.Name() }
func (p *Player) Frame() int           { return p.anim.Frame() }
func (p *Player) Motion() string       { return p.motion.String() }
func (p *Player) Radius() int          { return p.spec.Radius }

func (p *Player) Image() component.Frame { return p.anim.Current() }

func (p *Player) setMotion(m playerMotion) {
	p.motion = m
	name := playerClip(m, p.Direction)
	p.anim.Set(name, p.clips[name])
}

// Still stops the player unless it already stands still.
func (p *Player) Still() {
	if p.motion == motionStill {
		return
	}
	p.MoveX = 0
	p.MoveY = 0
	p.anim.Reset()
	p.setMotion(motionStill)
}

// Walk starts walking in dir. The frame restarts only on a change of
// direction or motion.
func (p *Player) Walk(dir common.Direction) {
	if dir != common.Left && dir != common.Right {
		return
	}
	if p.Direction == dir && p.motion == motionWalking {
		return
	}
	p.anim.Reset()
	p.Direction = dir
	p.MoveX = int(dir) * p.spec.WalkingSpeed
	p.setMotion(motionWalking)
}

// Jump starts a jump. Called while already jumping it cancels the jump and
// stands the player still.
func (p *Player) Jump(cues *component.Cues) {
	if p.jumping {
		p.jumping = false
		p.Still()
		return
	}
	p.anim.Reset()
	p.jumping = true
	p.jumpStartY = p.rect.Y
	cues.Emit(component.CueJump)
	p.MoveY = -p.spec.JumpingPower
	p.setMotion(motionJumping)
}

// Shoot fires a projectile in the facing direction when shooting is armed.
func (p *Player) Shoot(cues *component.Cues) {
	if !p.CanShoot {
		return
	}
	shot := NewProjectile(p.rect.X+p.shot.Offset.X, p.rect.Y+p.shot.Offset.Y, p.shot, p.shotImage)
	if p.Direction == common.Left {
		shot.Speed = -shot.Speed
	}
	p.Projectiles = append(p.Projectiles, shot)
	cues.Emit(component.CueShot)
}

// Respawn puts a player that fell out of the window back on the spawn point
// and charges the respawn penalty.
func (p *Player) Respawn() {
	if p.rect.Y <= common.Height || p.Lives.Current <= 0 {
		return
	}
	p.CanShoot = false
	p.moveTo(p.spec.Spawn.X, p.spec.Spawn.Y)
	p.Falling = false
	p.Score = max(0, p.Score-p.spec.RespawnPenalty)
}

// OnPlatform reports whether the feet rest on the ground or on top of a
// collidable platform. Hitting a platform from below stops the rise.
func (p *Player) OnPlatform(platforms []*Platform) bool {
	if p.rect.Y >= common.Ground {
		return true
	}
	for _, pl := range platforms {
		if pl == nil || !pl.Collided {
			continue
		}
		if p.feet.Intersects(pl.Top()) {
			return true
		}
		if p.body.Intersects(pl.Bottom()) {
			p.MoveY = 0
		}
	}
	return false
}

// AddX moves the player horizontally. A move that would leave the window is
// dropped whole.
func (p *Player) AddX(dx int) {
	if dx == 0 {
		return
	}
	nx := p.rect.X + dx
	if nx < 0 || nx > common.Width-p.rect.W {
		return
	}
	p.translate(dx, 0)
}

// AddY moves the player vertically, never above MinY.
func (p *Player) AddY(dy int) {
	if dy == 0 {
		return
	}
	if p.rect.Y+dy < p.spec.MinY {
		return
	}
	p.translate(0, dy)
}

func (p *Player) translate(dx, dy int) {
	p.rect = p.rect.Translate(dx, dy)
	p.feet = p.feet.Translate(dx, dy)
	p.body = p.body.Translate(dx, dy)
}

func (p *Player) moveTo(x, y int) {
	p.translate(x-p.rect.X, y-p.rect.Y)
}

func (p *Player) controls(in Input, cues *component.Cues) {
	if p.Falling {
		return
	}
	switch {
	case in.Pressed(KeyUp):
		if !p.jumping {
			p.Jump(cues)
		}
	case in.Pressed(KeyRight) && !in.Pressed(KeyLeft):
		p.Walk(common.Right)
	case in.Pressed(KeyLeft) && !in.Pressed(KeyRight):
		p.Walk(common.Left)
	default:
		p.Still()
	}

	if in.Pressed(KeySpace) && !p.shooting {
		p.Shoot(cues)
		p.shooting = true
	}
	if !in.Pressed(KeySpace) {
		p.shooting = false
	}
}

func (p *Player) applyGravity(platforms []*Platform, cues *component.Cues) {
	if !p.OnPlatform(platforms) {
		p.AddY(p.spec.Gravity)
	} else if p.jumping {
		p.Jump(cues)
	}
}

func (p *Player) move(delta int, platforms []*Platform, cues *component.Cues) {
	if !p.moveTimer.Add(delta) {
		return
	}
	if common.Abs(p.jumpStartY)-common.Abs(p.rect.Y) > p.spec.JumpHeight && p.jumping {
		p.MoveY = 0
	}
	p.AddX(p.MoveX)
	p.AddY(p.MoveY)
	p.applyGravity(platforms, cues)
}

func (p *Player) collectPickups(scene *Scene, cues *component.Cues) {
	for i, c := range scene.Collectibles {
		if c == nil {
			continue
		}
		if p.body.Intersects(c.Rect()) && !c.Collected {
			c.Collected = true
			cues.Emit(c.cue())
		}
		if !c.Collected {
			continue
		}
		c.Counter++
		if c.Counter > c.spec.RemoveAfter {
			scene.Collectibles = append(scene.Collectibles[:i], scene.Collectibles[i+1:]...)
			p.Score += c.Score()
			if c.Kind == KindSpecial {
				p.CanShoot = true
			}
		}
		break
	}
}

func (p *Player) hit(cues *component.Cues) {
	if p.Falling || !p.Lives.Vulnerable() {
		return
	}
	p.Falling = true
	p.MoveX = 0
	p.Lives.Hit(p.spec.HitCooldown)
	cues.Emit(component.CuePlayerHit)
}

func (p *Player) checkEnemies(enemies []*Enemy, cues *component.Cues) {
	for _, e := range enemies {
		if e != nil && e.body.Intersects(p.body) {
			p.hit(cues)
		}
	}
}

func (p *Player) checkTraps(traps []*Trap, cues *component.Cues) {
	for _, t := range traps {
		if t != nil && t.HasCollided(p) {
			p.hit(cues)
		}
	}
}

// updateProjectiles advances every live shot and drops the dead ones.
func (p *Player) updateProjectiles(ctx *TickContext) {
	if len(p.Projectiles) == 0 {
		return
	}
	writeIdx := 0
	for _, shot := range p.Projectiles {
		if shot == nil {
			continue
		}
		shot.Update(ctx)
		if !shot.Alive() {
			continue
		}
		p.Projectiles[writeIdx] = shot
		writeIdx++
	}
	clear(p.Projectiles[writeIdx:])
	p.Projectiles = p.Projectiles[:writeIdx]
}

// Update runs one tick: input, movement, animation, pickups, hits,
// projectiles, the death fall and finally respawn.
func (p *Player) Update(ctx *TickContext) {
	if ctx == nil || ctx.Delta <= 0 {
		return
	}
	scene := ctx.scene()

	p.controls(ctx.Input, ctx.Cues)
	p.move(ctx.Delta, scene.Platforms, ctx.Cues)
	p.anim.Update(ctx.Delta)
	p.collectPickups(scene, ctx.Cues)
	p.checkEnemies(scene.Enemies, ctx.Cues)
	p.checkTraps(scene.Traps, ctx.Cues)
	p.updateProjectiles(ctx)
	if p.Falling {
		p.AddY(p.spec.DeathFallSpeed)
	}
	p.Lives.Tick()
	p.Respawn()
}

func (p *Player) Draw(screen *ebiten.Image, opts DrawOptions) {
	if opts.Debug {
		fillRect(screen, p.feet, colornames.Blue)
		fillRect(screen, p.body, colornames.Green)
	}
	drawFrame(screen, p.Image(), p.rect.X, p.rect.Y, p.Falling)
	if p.Falling {
		return
	}
	for _, shot := range p.Projectiles {
		shot.Draw(screen, opts)
	}
}
