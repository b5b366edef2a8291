package obj

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/catchme/common"
	"github.com/milk9111/catchme/component"
	"github.com/milk9111/catchme/prefabs"
	"golang.org/x/image/colornames"
)

// enemyState is one step of the patrol cycle.
type enemyState interface {
	Name() string
	Patrol(e *Enemy)
}

var (
	stateEnemyMoving  enemyState = enemyMovingState{}
	stateEnemyWaiting enemyState = enemyWaitingState{}
)

type enemyMovingState struct{}

func (enemyMovingState) Name() string { return "moving" }
func (enemyMovingState) Patrol(e *Enemy) {
	if e.Direction == common.Right {
		e.setClip(ClipWalkingR)
		if e.rect.X >= e.RightLimit {
			e.setClip(ClipStillL)
			e.Direction = common.Left
			e.state = stateEnemyWaiting
		}
	} else {
		e.setClip(ClipWalkingL)
		if e.rect.X <= e.LeftLimit {
			e.setClip(ClipStillR)
			e.Direction = common.Right
			e.state = stateEnemyWaiting
		}
	}
	e.AddX(int(e.Direction))
}

type enemyWaitingState struct{}

func (enemyWaitingState) Name() string { return "waiting" }
func (enemyWaitingState) Patrol(e *Enemy) {
	if e.Direction == common.Right {
		e.setClip(ClipStillL)
	} else {
		e.setClip(ClipStillR)
	}
	e.wait++
	if e.wait >= e.spec.WaitTicks {
		e.wait = 0
		e.state = stateEnemyMoving
	}
}

// Enemy patrols between two x bounds and chases a nearby player. Stomped or
// shot enemies drop out of the window and come back from the top later.
type Enemy struct {
	spec  prefabs.EnemySpec
	clips Clips
	anim  *component.Animation

	rect common.Rect
	head common.Rect
	body common.Rect
	feet common.Rect

	Direction  common.Direction
	LeftLimit  int
	RightLimit int

	state        enemyState
	wait         int
	wasHit       bool
	falling      bool
	deathElapsed int
	moveTimer    component.Accumulator
}

// NewEnemy places an enemy at (x, y) patrolling [left, right]. All six
// clips are required; the sprite size comes from walking_r.
func NewEnemy(clips Clips, x, y, left, right int, spec prefabs.EnemySpec) (*Enemy, error) {
	if err := clips.require(ClipStillR, ClipStillL, ClipWalkingR, ClipWalkingL, ClipRunningR, ClipRunningL); err != nil {
		return nil, err
	}
	if x < 0 || y < 0 {
		return nil, fmt.Errorf("%w: enemy at (%d, %d)", ErrInvalidPosition, x, y)
	}
	if left < 0 || right < left {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidPatrol, left, right)
	}
	w, h := clips[ClipWalkingR].Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: enemy frame %dx%d", ErrInvalidSize, w, h)
	}

	return &Enemy{
		spec:       spec,
		clips:      clips,
		anim:       component.NewAnimation(ClipWalkingR, clips[ClipWalkingR], spec.FrameRate),
		rect:       common.R(x, y, w, h),
		head:       common.R(x+10, y+15, w-18, 5),
		body:       common.R(x+10, y+35, w-20, h-35),
		feet:       common.R(x+25, y+55, w-55, 10),
		Direction:  common.Right,
		LeftLimit:  left,
		RightLimit: right,
		state:      stateEnemyMoving,
		moveTimer:  component.Accumulator{Rate: spec.MoveRate},
	}, nil
}

func (e *Enemy) Position() (int, int)   { return e.rect.X, e.rect.Y }
func (e *Enemy) Rect() common.Rect      { return e.rect }
func (e *Enemy) Head() common.Rect      { return e.head }
func (e *Enemy) Body() common.Rect      { return e.body }
func (e *Enemy) Feet() common.Rect      { return e.feet }
func (e *Enemy) Image() component.Frame { return e.anim.Current() }
func (e *Enemy) Clip() string           { return e.anim.Name() }
func (e *Enemy) PatrolState() string    { return e.state.Name() }
func (e *Enemy) WasHit() bool           { return e.wasHit }
func (e *Enemy) Falling() bool          { return e.falling }

func (e *Enemy) setClip(name string) {
	if e.anim.Name() == name {
		return
	}
	e.anim.Set(name, e.clips[name])
}

func (e *Enemy) AddX(dx int) {
	if dx == 0 {
		return
	}
	e.translate(dx, 0)
}

func (e *Enemy) AddY(dy int) {
	if dy == 0 {
		return
	}
	e.translate(0, dy)
}

func (e *Enemy) translate(dx, dy int) {
	e.rect = e.rect.Translate(dx, dy)
	e.head = e.head.Translate(dx, dy)
	e.body = e.body.Translate(dx, dy)
	e.feet = e.feet.Translate(dx, dy)
}

func (e *Enemy) patrol() {
	e.state.Patrol(e)
}

// attack chases the player when it is close enough and patrols otherwise.
// The chase steps against the facing direction.
func (e *Enemy) attack(p *Player) {
	if p == nil || e.falling || e.wasHit {
		return
	}
	dx := p.rect.X - e.rect.X
	dy := p.rect.Y - e.rect.Y
	switch {
	case dx == 0:
		if e.Direction == common.Right {
			e.setClip(ClipStillR)
		} else {
			e.setClip(ClipStillL)
		}
	case common.Abs(dx) < e.spec.AttackRange && common.Abs(dy) <= e.spec.AttackHeight:
		if dx > 0 {
			e.Direction = common.Left
			e.setClip(ClipRunningL)
		} else {
			e.Direction = common.Right
			e.setClip(ClipRunningR)
		}
		e.AddX(-int(e.Direction))
	default:
		e.patrol()
	}
}

func (e *Enemy) move(delta int, p *Player) {
	if e.moveTimer.Add(delta) {
		e.attack(p)
	}
}

// respawn drops the enemy back in from the top at a random x.
func (e *Enemy) respawn(ctx *TickContext) {
	lo := e.spec.RespawnMinX
	hi := common.Width - e.spec.RespawnEdge
	x := lo + ctx.intN(hi-lo)
	e.translate(x-e.rect.X, -e.rect.Y)
	e.falling = true
	e.wasHit = false
}

func (e *Enemy) collidedPlayer(ctx *TickContext, p *Player) {
	if p != nil && p.feet.Intersects(e.head) && !e.wasHit && !p.Falling {
		e.wasHit = true
		ctx.emit(component.CueEnemyHit)
	}
	if !e.wasHit {
		return
	}
	e.AddY(e.spec.Gravity)
	if e.rect.Bottom() >= common.Height {
		e.deathElapsed += ctx.Delta
		if e.deathElapsed > e.spec.DeathDelayMS {
			e.respawn(ctx)
			e.deathElapsed = 0
		}
	}
}

func (e *Enemy) collidedPlatform(platforms []*Platform) {
	if e.falling {
		e.AddY(e.spec.Gravity)
		e.setClip(ClipStillL)
	}
	supported := e.rect.Bottom() >= common.Ground+e.spec.GroundOffset
	for _, pl := range platforms {
		if pl != nil && pl.Collided && e.feet.Intersects(pl.rect) {
			supported = true
			break
		}
	}
	e.falling = !supported
}

// Update runs one tick: movement, animation, then player and platform
// contacts.
func (e *Enemy) Update(ctx *TickContext) {
	if ctx == nil || ctx.Delta <= 0 {
		return
	}
	scene := ctx.scene()
	e.move(ctx.Delta, scene.Player)
	e.anim.Update(ctx.Delta)
	e.collidedPlayer(ctx, scene.Player)
	e.collidedPlatform(scene.Platforms)
}

func (e *Enemy) Draw(screen *ebiten.Image, opts DrawOptions) {
	if opts.Debug {
		fillRect(screen, e.head, colornames.Black)
		fillRect(screen, e.body, colornames.Blue)
		fillRect(screen, e.feet, colornames.Green)
	}
	drawFrame(screen, e.Image(), e.rect.X, e.rect.Y, e.wasHit)
}
