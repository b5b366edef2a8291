package obj

import (
	"errors"
	"image"
	"testing"

	"github.com/milk9111/catchme/common"
	"github.com/milk9111/catchme/component"
	"github.com/milk9111/catchme/prefabs"
)

func TestNewPlayerErrors(t *testing.T) {
	full := clipsOf(64, 64, ClipStillR, ClipStillL, ClipWalkingR, ClipWalkingL, ClipJumpingR, ClipJumpingL)
	missing := clipsOf(64, 64, ClipStillR, ClipStillL, ClipWalkingR, ClipWalkingL, ClipJumpingR)
	empty := clipsOf(64, 64, ClipStillL, ClipWalkingR, ClipWalkingL, ClipJumpingR, ClipJumpingL)
	empty[ClipStillR] = component.Sequence{image.Rect(0, 0, 0, 0)}

	cases := []struct {
		name  string
		clips Clips
		x, y  int
		want  error
	}{
		{"ok", full, 10, 561, nil},
		{"origin_is_valid", full, 0, 0, nil},
		{"missing_clip", missing, 10, 561, ErrMissingAnimation},
		{"negative_x", full, -1, 561, ErrInvalidPosition},
		{"zero_frame", empty, 10, 561, ErrInvalidSize},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := NewPlayer(c.clips, c.x, c.y, prefabs.DefaultPlayerSpec())
			if c.want == nil {
				if err != nil || p == nil {
					t.Fatalf("expected player, got %v", err)
				}
				return
			}
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
			if p != nil {
				t.Fatalf("expected nil player on error")
			}
		})
	}
}

func TestPlayerSubRectsFollowSprite(t *testing.T) {
	p := newTestPlayer(t, 100, 200)
	check := func() {
		t.Helper()
		r := p.Rect()
		if want := common.R(r.X+20, r.Y+61, 25, 4); p.Feet() != want {
			t.Fatalf("feet %+v, want %+v", p.Feet(), want)
		}
		if want := common.R(r.X+15, r.Y+13, 32, 40); p.Body() != want {
			t.Fatalf("body %+v, want %+v", p.Body(), want)
		}
	}
	check()
	p.AddX(7)
	p.AddY(-30)
	check()
	p.AddX(-5000)
	check()
	p.moveTo(10, 561)
	check()
}

func TestPlayerMoveBounds(t *testing.T) {
	cases := []struct {
		name   string
		x, y   int
		dx, dy int
		wantX  int
		wantY  int
	}{
		{"left_edge_stays", 0, 561, -5, 0, 0, 561},
		{"right_edge_stays", common.Width - 64, 561, 5, 0, common.Width - 64, 561},
		{"inside_moves", 100, 561, 5, 0, 105, 561},
		{"overshoot_rejected", 3, 561, -5, 0, 3, 561},
		{"reaches_min_y", 100, 0, 0, -80, 100, -80},
		{"below_min_y_rejected", 100, 0, 0, -81, 100, 0},
		{"no_lower_bound", 100, 790, 0, 100, 100, 890},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newTestPlayer(t, c.x, c.y)
			p.AddX(c.dx)
			p.AddY(c.dy)
			if x, y := p.Position(); x != c.wantX || y != c.wantY {
				t.Fatalf("position (%d, %d), want (%d, %d)", x, y, c.wantX, c.wantY)
			}
		})
	}
}

func TestPlayerWalkLeftAtEdge(t *testing.T) {
	p := newTestPlayer(t, 0, 561)
	ctx := tick(&Scene{Player: p}, InputOf(KeyLeft))
	for range 20 {
		p.Update(ctx)
	}
	if p.MoveX != -5 {
		t.Fatalf("MoveX %d, want -5", p.MoveX)
	}
	if x, _ := p.Position(); x != 0 {
		t.Fatalf("x %d, want 0", x)
	}
	if p.Clip() != ClipWalkingL {
		t.Fatalf("clip %q, want %q", p.Clip(), ClipWalkingL)
	}
}

func TestPlayerJumpToggle(t *testing.T) {
	p := newTestPlayer(t, 100, 561)
	cues := &component.Cues{}

	p.Walk(common.Right)
	p.Jump(cues)
	if !p.Jumping() || p.MoveY != -25 || p.Clip() != ClipJumpingR {
		t.Fatalf("after first jump: jumping=%v moveY=%d clip=%q", p.Jumping(), p.MoveY, p.Clip())
	}
	p.Jump(cues)
	if p.Jumping() {
		t.Fatalf("second jump should cancel the jump")
	}
	if p.MoveX != 0 || p.MoveY != 0 {
		t.Fatalf("velocity (%d, %d), want zero", p.MoveX, p.MoveY)
	}
	if p.Clip() != ClipStillR || p.Motion() != "still" {
		t.Fatalf("clip %q motion %q, want still", p.Clip(), p.Motion())
	}
	if got := countCue(cues.Drain(), component.CueJump); got != 1 {
		t.Fatalf("jump cues %d, want 1", got)
	}
}

func TestPlayerJumpArc(t *testing.T) {
	p := newTestPlayer(t, 100, 561)
	ctx := tick(&Scene{Player: p}, InputOf(KeyUp))

	minY := 561
	for i := 1; i <= 28; i++ {
		p.Update(ctx)
		_, y := p.Position()
		minY = min(minY, y)
		if !p.Jumping() {
			t.Fatalf("tick %d: landed early at y=%d", i, y)
		}
	}
	p.Update(ctx)
	if p.Jumping() {
		t.Fatalf("expected landing on tick 29")
	}
	if _, y := p.Position(); y != 560 {
		t.Fatalf("landed at y=%d, want 560", y)
	}
	if minY != 408 {
		t.Fatalf("apex %d, want 408", minY)
	}
	if got := countCue(ctx.Cues.Drain(), component.CueJump); got != 1 {
		t.Fatalf("jump cues %d, want 1", got)
	}
}

func TestPlayerReleasingJumpStops(t *testing.T) {
	p := newTestPlayer(t, 100, 561)
	ctx := tick(&Scene{Player: p}, InputOf(KeyUp))
	p.Update(ctx)
	ctx.Input = Input{}
	p.Update(ctx)
	if p.MoveY != 0 || p.Clip() != ClipStillR {
		t.Fatalf("moveY %d clip %q, want 0 and still", p.MoveY, p.Clip())
	}
}

func TestPlayerOnPlatform(t *testing.T) {
	pl, err := NewPlatform(nil, 100, 300, 144, 48, 3, true)
	if err != nil {
		t.Fatalf("NewPlatform: %v", err)
	}
	deco, err := NewPlatform(nil, 100, 300, 144, 48, 3, false)
	if err != nil {
		t.Fatalf("NewPlatform: %v", err)
	}

	cases := []struct {
		name      string
		y         int
		platforms []*Platform
		want      bool
		wantMoveY int
	}{
		{"ground", common.Ground, nil, true, -25},
		{"standing_on_top", 240, []*Platform{pl}, true, -25},
		{"decorative_ignored", 240, []*Platform{deco}, false, -25},
		{"bumps_bottom", 300, []*Platform{pl}, false, 0},
		{"air", 100, []*Platform{pl}, false, -25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newTestPlayer(t, 110, c.y)
			p.MoveY = -25
			if got := p.OnPlatform(c.platforms); got != c.want {
				t.Fatalf("OnPlatform %v, want %v", got, c.want)
			}
			if p.MoveY != c.wantMoveY {
				t.Fatalf("MoveY %d, want %d", p.MoveY, c.wantMoveY)
			}
		})
	}
}

func TestPlayerCollectsAfterEightTicks(t *testing.T) {
	cases := []struct {
		kind      Kind
		wantScore int
		wantShoot bool
		wantCue   component.Cue
	}{
		{KindNormal, 100, false, component.CuePickup},
		{KindSpecial, 150, true, component.CuePickupSpecial},
	}
	for _, c := range cases {
		t.Run(string(c.kind), func(t *testing.T) {
			p := newTestPlayer(t, 100, 561)
			fruit := newTestCollectible(t, 100, 561, c.kind)
			scene := &Scene{Player: p, Collectibles: []*Collectible{fruit}}
			ctx := tick(scene, Input{})

			for i := 1; i <= 7; i++ {
				p.Update(ctx)
				if len(scene.Collectibles) != 1 {
					t.Fatalf("tick %d: removed too early", i)
				}
			}
			if !fruit.Collected || fruit.Counter != 7 {
				t.Fatalf("collected=%v counter=%d", fruit.Collected, fruit.Counter)
			}
			p.Update(ctx)
			if len(scene.Collectibles) != 0 {
				t.Fatalf("expected removal on tick 8")
			}
			if p.Score != c.wantScore || p.CanShoot != c.wantShoot {
				t.Fatalf("score %d canShoot %v, want %d %v", p.Score, p.CanShoot, c.wantScore, c.wantShoot)
			}
			if got := countCue(ctx.Cues.Drain(), c.wantCue); got != 1 {
				t.Fatalf("pickup cues %d, want 1", got)
			}
		})
	}
}

func TestPlayerCollectsOneAtATime(t *testing.T) {
	p := newTestPlayer(t, 100, 561)
	a := newTestCollectible(t, 100, 561, KindNormal)
	b := newTestCollectible(t, 100, 561, KindNormal)
	scene := &Scene{Player: p, Collectibles: []*Collectible{a, b}}
	ctx := tick(scene, Input{})

	for range 8 {
		p.Update(ctx)
	}
	if len(scene.Collectibles) != 1 || scene.Collectibles[0] != b {
		t.Fatalf("expected only the first collectible removed")
	}
	if b.Collected {
		t.Fatalf("second collectible should wait for the first")
	}
	p.Update(ctx)
	if !b.Collected {
		t.Fatalf("second collectible should be collected next")
	}
}

func TestPlayerRespawnPenalty(t *testing.T) {
	cases := []struct {
		name      string
		score     int
		lives     int
		wantScore int
		respawned bool
	}{
		{"penalty", 120, 2, 70, true},
		{"floored", 30, 2, 0, true},
		{"zero", 0, 1, 0, true},
		{"no_lives_left", 120, 0, 120, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newTestPlayer(t, 300, 561)
			p.Score = c.score
			p.Lives.Current = c.lives
			p.Falling = true
			p.CanShoot = true
			p.AddY(common.Height)
			p.Respawn()

			x, y := p.Position()
			if c.respawned != (x == 10 && y == 561) {
				t.Fatalf("position (%d, %d), respawned=%v", x, y, c.respawned)
			}
			if p.Score != c.wantScore {
				t.Fatalf("score %d, want %d", p.Score, c.wantScore)
			}
			if c.respawned && (p.Falling || p.CanShoot) {
				t.Fatalf("respawn should clear falling and shooting")
			}
			if p.Feet() != common.R(30, 622, 25, 4) && c.respawned {
				t.Fatalf("feet %+v not moved with the sprite", p.Feet())
			}
		})
	}
}

func TestPlayerHitByEnemy(t *testing.T) {
	p := newTestPlayer(t, 100, 561)
	e := newTestEnemy(t, 100, 561, 0, 1000)
	ctx := tick(&Scene{Player: p, Enemies: []*Enemy{e}}, InputOf(KeyRight))

	p.Update(ctx)
	if !p.Falling || p.Lives.Current != 2 || p.MoveX != 0 {
		t.Fatalf("falling=%v lives=%d moveX=%d", p.Falling, p.Lives.Current, p.MoveX)
	}
	if p.Lives.Cooldown != 59 {
		t.Fatalf("cooldown %d, want 59", p.Lives.Cooldown)
	}
	_, y := p.Position()
	p.Update(ctx)
	if p.Lives.Current != 2 {
		t.Fatalf("lost a second life while falling")
	}
	if _, y2 := p.Position(); y2 != y+2 {
		t.Fatalf("death fall %d -> %d, want +2", y, y2)
	}
	if got := countCue(ctx.Cues.Drain(), component.CuePlayerHit); got != 1 {
		t.Fatalf("hit cues %d, want 1", got)
	}
}

func TestPlayerHitByTrap(t *testing.T) {
	p := newTestPlayer(t, 100, 561)
	trap, err := NewTrap(frames(38, 38, 4), 112, 575, 1, prefabs.DefaultTrapSpec())
	if err != nil {
		t.Fatalf("NewTrap: %v", err)
	}
	ctx := tick(&Scene{Player: p, Traps: []*Trap{trap}}, Input{})
	p.Update(ctx)
	if !p.Falling || p.Lives.Current != 2 {
		t.Fatalf("falling=%v lives=%d", p.Falling, p.Lives.Current)
	}
}

func TestPlayerShooting(t *testing.T) {
	p := newTestPlayer(t, 100, 561)
	ctx := tick(&Scene{Player: p}, InputOf(KeySpace))

	p.Update(ctx)
	if len(p.Projectiles) != 0 {
		t.Fatalf("fired without a special pickup")
	}

	ctx.Input = Input{}
	p.Update(ctx)
	p.CanShoot = true
	ctx.Input = InputOf(KeySpace)
	p.Update(ctx)
	p.Update(ctx)
	if len(p.Projectiles) != 1 {
		t.Fatalf("held fire: %d projectiles, want 1", len(p.Projectiles))
	}
	if p.Projectiles[0].Speed != 5 {
		t.Fatalf("speed %d, want 5", p.Projectiles[0].Speed)
	}

	ctx.Input = InputOf(KeyLeft)
	p.Update(ctx)
	ctx.Input = InputOf(KeyLeft, KeySpace)
	p.Update(ctx)
	if len(p.Projectiles) != 2 {
		t.Fatalf("%d projectiles, want 2", len(p.Projectiles))
	}
	if p.Projectiles[1].Speed != -5 {
		t.Fatalf("leftward speed %d, want -5", p.Projectiles[1].Speed)
	}
	if got := countCue(ctx.Cues.Drain(), component.CueShot); got != 2 {
		t.Fatalf("shot cues %d, want 2", got)
	}
}

func TestPlayerShotKillsEnemySameTick(t *testing.T) {
	p := newTestPlayer(t, 100, 561)
	p.CanShoot = true
	e := newTestEnemy(t, 100, 561, 0, 1000)
	ctx := tick(&Scene{Player: p, Enemies: []*Enemy{e}}, InputOf(KeySpace))

	p.Shoot(ctx.Cues)
	p.updateProjectiles(ctx)
	if !e.WasHit() {
		t.Fatalf("enemy should be hit")
	}
	if len(p.Projectiles) != 0 {
		t.Fatalf("projectile should be dropped on the same tick")
	}
}
