package obj

import (
	"image"
	"math/rand/v2"
	"testing"

	"github.com/milk9111/catchme/component"
	"github.com/milk9111/catchme/prefabs"
)

func frames(w, h, n int) component.Sequence {
	seq := make(component.Sequence, n)
	for i := range seq {
		seq[i] = image.Rect(0, 0, w, h)
	}
	return seq
}

func clipsOf(w, h int, names ...string) Clips {
	c := Clips{}
	for _, n := range names {
		c[n] = frames(w, h, 4)
	}
	return c
}

func newTestPlayer(t *testing.T, x, y int) *Player {
	t.Helper()
	clips := clipsOf(64, 64, ClipStillR, ClipStillL, ClipWalkingR, ClipWalkingL, ClipJumpingR, ClipJumpingL)
	p, err := NewPlayer(clips, x, y, prefabs.DefaultPlayerSpec())
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return p
}

func newTestEnemy(t *testing.T, x, y, left, right int) *Enemy {
	t.Helper()
	clips := clipsOf(64, 64, ClipStillR, ClipStillL, ClipWalkingR, ClipWalkingL, ClipRunningR, ClipRunningL)
	e, err := NewEnemy(clips, x, y, left, right, prefabs.DefaultEnemySpec())
	if err != nil {
		t.Fatalf("NewEnemy: %v", err)
	}
	return e
}

func newTestCollectible(t *testing.T, x, y int, kind Kind) *Collectible {
	t.Helper()
	c, err := NewCollectible(frames(32, 32, 17), frames(64, 64, 6), x, y, kind, prefabs.DefaultCollectibleSpec())
	if err != nil {
		t.Fatalf("NewCollectible: %v", err)
	}
	return c
}

func tick(scene *Scene, in Input) *TickContext {
	return &TickContext{
		Delta: 10,
		Input: in,
		Scene: scene,
		Cues:  &component.Cues{},
		Rand:  rand.New(rand.NewPCG(1, 2)),
	}
}

func countCue(cues []component.Cue, want component.Cue) int {
	n := 0
	for _, c := range cues {
		if c == want {
			n++
		}
	}
	return n
}
