package obj

import (
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/catchme/component"
)

// Clip names used by level records.
const (
	ClipStillR   = "still_r"
	ClipStillL   = "still_l"
	ClipWalkingR = "walking_r"
	ClipWalkingL = "walking_l"
	ClipJumpingR = "jumping_r"
	ClipJumpingL = "jumping_l"
	ClipRunningR = "running_r"
	ClipRunningL = "running_l"
)

// Clips maps a clip name to its frames.
type Clips map[string]component.Sequence

func (c Clips) require(names ...string) error {
	for _, n := range names {
		if len(c[n]) == 0 {
			return fmt.Errorf("%w: %s", ErrMissingAnimation, n)
		}
	}
	return nil
}

// DrawOptions is passed to every Draw call.
type DrawOptions struct {
	// Debug draws collision rectangles.
	Debug bool
}

// Entity is the contract shared by everything placed in a level.
type Entity interface {
	Position() (int, int)
	Image() component.Frame
	Update(ctx *TickContext)
	Draw(screen *ebiten.Image, opts DrawOptions)
}

// Scene holds the entity collections of one level. Collectibles shrink as
// they are picked up; the other collections are fixed for the level.
type Scene struct {
	Player       *Player
	Platforms    []*Platform
	Collectibles []*Collectible
	Enemies      []*Enemy
	Traps        []*Trap
}

// TickContext carries everything an entity reads during one tick.
type TickContext struct {
	// Delta is the elapsed time since the previous tick in milliseconds.
	Delta int
	Input Input
	Scene *Scene
	Cues  *component.Cues
	Rand  *rand.Rand
}

func (ctx *TickContext) scene() *Scene {
	if ctx.Scene == nil {
		return &Scene{}
	}
	return ctx.Scene
}

func (ctx *TickContext) emit(c component.Cue) {
	ctx.Cues.Emit(c)
}

func (ctx *TickContext) intN(n int) int {
	if n <= 0 {
		return 0
	}
	if ctx.Rand == nil {
		return rand.IntN(n)
	}
	return ctx.Rand.IntN(n)
}
