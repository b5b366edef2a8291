package prefabs

import (
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedSpecsMatchDefaults(t *testing.T) {
	player, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load player: %v", err)
	}
	want := DefaultPlayerSpec()
	if player.Gravity != want.Gravity || player.JumpHeight != want.JumpHeight ||
		player.Spawn != want.Spawn || player.MinY != want.MinY || player.Lives != want.Lives {
		t.Fatalf("player spec = %+v, want defaults %+v", player, want)
	}
	if a, ok := FindAudio(player.Audio, "jump"); !ok || a.Volume != 0.1 {
		t.Fatalf("jump audio = %+v, %v", a, ok)
	}

	enemy, err := LoadEnemySpec()
	if err != nil {
		t.Fatalf("load enemy: %v", err)
	}
	if enemy.AttackRange != 200 || enemy.WaitTicks != 120 || enemy.DeathDelayMS != 5000 {
		t.Fatalf("enemy spec = %+v", enemy)
	}

	col, err := LoadCollectibleSpec()
	if err != nil {
		t.Fatalf("load collectible: %v", err)
	}
	if col.RemoveAfter != 7 || col.NormalScore != 100 || col.SpecialScore != 150 {
		t.Fatalf("collectible spec = %+v", col)
	}

	trap, err := LoadTrapSpec()
	if err != nil {
		t.Fatalf("load trap: %v", err)
	}
	if trap.Radius != 25 || trap.LargeRadius != 35 {
		t.Fatalf("trap spec = %+v", trap)
	}

	proj, err := LoadProjectileSpec()
	if err != nil {
		t.Fatalf("load projectile: %v", err)
	}
	if proj.Speed != 5 || proj.Size.Width != 30 || proj.Offset.Y != 40 {
		t.Fatalf("projectile spec = %+v", proj)
	}

	plat, err := LoadPlatformSpec()
	if err != nil || plat.Columns != 8 || plat.Rows != 8 {
		t.Fatalf("platform spec = %+v, %v", plat, err)
	}

	game, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("load game: %v", err)
	}
	if game.Screens["level_1"].Music.File != "nivel_1.ogg" || !game.Screens["main"].Loop {
		t.Fatalf("game screens = %+v", game.Screens)
	}
	if game.HUD.HeartsAt != (PointSpec{X: 500, Y: 10}) {
		t.Fatalf("hud = %+v", game.HUD)
	}
}

func TestFillKeepsExplicitValues(t *testing.T) {
	spec := PlayerSpec{Gravity: 4}
	spec.fill(DefaultPlayerSpec())
	if spec.Gravity != 4 || spec.WalkingSpeed != 5 || spec.Placeholder.Width != 64 {
		t.Fatalf("fill = %+v", spec)
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `"#0000ff"`, color.NRGBA{B: 0xff, A: 0xff}, false},
		{"rgba", `"ff000080"`, color.NRGBA{R: 0xff, A: 0x80}, false},
		{"short", `"#fff"`, color.NRGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Color != c.want {
				t.Fatalf("color = %v, want %v", got.Color, c.want)
			}
		})
	}
}

func TestCleanPrefabPath(t *testing.T) {
	if cleanPrefabPath("prefabs/player.yaml") != "player.yaml" || cleanPrefabPath("") != "" {
		t.Fatal("clean")
	}
	if !isSpecFile("a/B.YML") || !isLevelFile("levels/level_1.json") || isLevelFile("x.go") {
		t.Fatal("file filters")
	}
}
