package system

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/catchme/assets"
	"github.com/milk9111/catchme/common"
	"github.com/milk9111/catchme/component"
	"github.com/milk9111/catchme/levels"
	"github.com/milk9111/catchme/obj"
)

// Outcome is the state of a level after a tick.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	// OutcomeCleared means every collectible was picked up.
	OutcomeCleared
	// OutcomeFailed means the last life was lost and the player fell out.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCleared:
		return "cleared"
	case OutcomeFailed:
		return "failed"
	default:
		return "running"
	}
}

// Deps are the collaborators a World builds its entities with.
type Deps struct {
	Assets *assets.Loader
	Tuning Tuning
	// Rand drives enemy respawn positions. Nil uses the global source.
	Rand *rand.Rand
}

// World runs one level: it owns the scene and drives every entity in a
// fixed order each tick.
type World struct {
	Name  string
	Scene *obj.Scene

	deps    Deps
	cues    component.Cues
	outcome Outcome
}

// NewWorld creates a world and loads the named level into it.
func NewWorld(name string, deps Deps) (*World, error) {
	if deps.Assets == nil {
		return nil, errors.New("system: world needs an asset loader")
	}
	w := &World{deps: deps}
	if err := w.Load(name); err != nil {
		return nil, err
	}
	return w, nil
}

// Load replaces the scene with the named level. A missing or malformed
// level file loads as an empty level.
func (w *World) Load(name string) error {
	if w == nil {
		return fmt.Errorf("world is nil")
	}
	w.LoadFile(name, levels.LoadOrEmpty(name))
	return nil
}

// SetTuning replaces the specs later Load calls build entities from. The
// running scene keeps the specs it was built with.
func (w *World) SetTuning(t Tuning) {
	w.deps.Tuning = t
}

// LoadFile replaces the scene with entities built from f.
func (w *World) LoadFile(name string, f *levels.File) {
	w.Name = name
	w.Scene = w.buildScene(f)
	w.cues.Drain()
	w.outcome = OutcomeRunning
}

// Update advances the level by delta milliseconds: traps, collectibles,
// enemies, then the player and its projectiles. Enemies see the player as
// it was at the end of the previous tick.
func (w *World) Update(delta int, in obj.Input) Outcome {
	if w == nil || w.Scene == nil {
		return OutcomeRunning
	}
	if delta <= 0 || w.outcome != OutcomeRunning {
		return w.outcome
	}
	ctx := &obj.TickContext{
		Delta: delta,
		Input: in,
		Scene: w.Scene,
		Cues:  &w.cues,
		Rand:  w.deps.Rand,
	}

	for _, t := range w.Scene.Traps {
		t.Update(ctx)
	}
	for _, c := range w.Scene.Collectibles {
		c.Update(ctx)
	}
	for _, e := range w.Scene.Enemies {
		e.Update(ctx)
	}
	if w.Scene.Player != nil {
		w.Scene.Player.Update(ctx)
	}

	w.outcome = w.evaluate()
	return w.outcome
}

func (w *World) evaluate() Outcome {
	if len(w.Scene.Collectibles) == 0 {
		return OutcomeCleared
	}
	p := w.Scene.Player
	if p == nil {
		return OutcomeRunning
	}
	if _, y := p.Position(); p.Lives.Current == 0 && y > common.Height {
		return OutcomeFailed
	}
	return OutcomeRunning
}

// Outcome returns the result of the last tick.
func (w *World) Outcome() Outcome { return w.outcome }

// Player returns the controlled player, or nil for a level without one.
func (w *World) Player() *obj.Player { return w.Scene.Player }

// Score returns the level score so far.
func (w *World) Score() int {
	if w.Scene.Player == nil {
		return 0
	}
	return w.Scene.Player.Score
}

// Lives returns the player's lives, or nil for a level without a player.
func (w *World) Lives() *component.Lives {
	if w.Scene.Player == nil {
		return nil
	}
	return w.Scene.Player.Lives
}

// Cues drains the audio cues raised since the last call.
func (w *World) Cues() []component.Cue { return w.cues.Drain() }

// Entities lists every entity in draw order.
func (w *World) Entities() []obj.Entity {
	s := w.Scene
	out := make([]obj.Entity, 0, len(s.Traps)+len(s.Platforms)+len(s.Collectibles)+len(s.Enemies)+1)
	for _, t := range s.Traps {
		out = append(out, t)
	}
	for _, p := range s.Platforms {
		out = append(out, p)
	}
	for _, c := range s.Collectibles {
		out = append(out, c)
	}
	for _, e := range s.Enemies {
		out = append(out, e)
	}
	if s.Player != nil {
		out = append(out, s.Player)
	}
	return out
}

// Draw renders the level in tick order.
func (w *World) Draw(screen *ebiten.Image, opts obj.DrawOptions) {
	if w == nil || w.Scene == nil {
		return
	}
	for _, e := range w.Entities() {
		e.Draw(screen, opts)
	}
}
