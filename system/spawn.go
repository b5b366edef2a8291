package system

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/milk9111/catchme/component"
	"github.com/milk9111/catchme/levels"
	"github.com/milk9111/catchme/obj"
)

// Sheets mirrored at load time. Player left clips face the other way in the
// art; enemy art faces left except the left still/walk and right run clips.
var (
	playerFlips = map[string]bool{
		obj.ClipStillR: false, obj.ClipStillL: true,
		obj.ClipWalkingR: false, obj.ClipWalkingL: true,
		obj.ClipJumpingR: false, obj.ClipJumpingL: true,
	}
	enemyFlips = map[string]bool{
		obj.ClipStillR: true, obj.ClipStillL: false,
		obj.ClipWalkingR: true, obj.ClipWalkingL: false,
		obj.ClipRunningR: false, obj.ClipRunningL: true,
	}
)

// buildScene turns level records into entities. A record that cannot be
// built is logged and skipped.
func (w *World) buildScene(f *levels.File) *obj.Scene {
	scene := &obj.Scene{}
	if f == nil {
		return scene
	}
	scene.Platforms = w.spawnPlatforms(f.Platforms)
	scene.Collectibles = w.spawnCollectibles(f.Collectibles)
	scene.Enemies = w.spawnEnemies(f.Enemies)
	scene.Traps = w.spawnTraps(f.Traps)
	scene.Player = w.spawnPlayer(f.Players)
	return scene
}

func (w *World) clips(anims map[string]levels.SheetData, flips map[string]bool, scale float64, phW, phH int) obj.Clips {
	clips := obj.Clips{}
	for name, flip := range flips {
		sheet, ok := anims[name]
		if !ok {
			continue
		}
		clips[name] = w.deps.Assets.FramesOr(sheet.Path, sheet.Columns, 1, flip, scale, phW, phH)
	}
	return clips
}

func (w *World) spawnPlayer(records []levels.PlayerData) *obj.Player {
	spec := w.deps.Tuning.Player
	for i, rec := range records {
		clips := w.clips(rec.Animations, playerFlips, spec.Scale, spec.Placeholder.Width, spec.Placeholder.Height)
		p, err := obj.NewPlayer(clips, rec.PosX, rec.PosY, spec)
		if err != nil {
			skip(w.Name, "player", i, err)
			continue
		}
		p.SetProjectile(w.deps.Tuning.Projectile, w.projectileImage())
		return p
	}
	return nil
}

func (w *World) projectileImage() component.Frame {
	spec := w.deps.Tuning.Projectile
	img, err := w.deps.Assets.Image(spec.Image, spec.Size.Width, spec.Size.Height)
	if err != nil {
		log.Warn("projectile image unavailable", "path", spec.Image, "err", err)
		return nil
	}
	return img
}

func (w *World) spawnPlatforms(records []levels.PlatformData) []*obj.Platform {
	spec := w.deps.Tuning.Platform
	platforms := make([]*obj.Platform, 0, len(records))
	for i, rec := range records {
		var img component.Frame
		if rec.Width > 0 && rec.Height > 0 {
			tile, err := w.deps.Assets.Tile(spec.Sheet, spec.Columns, spec.Rows, rec.Type, rec.Width, rec.Height)
			if err != nil {
				log.Warn("platform tile unavailable, using placeholder", "sheet", spec.Sheet, "type", rec.Type, "err", err)
				tile = w.deps.Assets.Placeholder(rec.Width, rec.Height, 1)[0]
			}
			img = tile
		}
		p, err := obj.NewPlatform(img, rec.PosX, rec.PosY, rec.Width, rec.Height, rec.Type, rec.Collided)
		if err != nil {
			skip(w.Name, "platform", i, err)
			continue
		}
		platforms = append(platforms, p)
	}
	return platforms
}

func (w *World) spawnCollectibles(records []levels.CollectibleData) []*obj.Collectible {
	spec := w.deps.Tuning.Collectible
	ph := spec.Placeholder
	collected := w.deps.Assets.FramesOr(spec.CollectedSheet, spec.CollectedColumns, 1, false, spec.CollectedScale, ph.Width, ph.Height)

	collectibles := make([]*obj.Collectible, 0, len(records))
	for i, rec := range records {
		if rec.Scale <= 0 {
			skip(w.Name, "collectible", i, fmt.Errorf("%w: %v", obj.ErrInvalidScale, rec.Scale))
			continue
		}
		kind, err := obj.ParseKind(rec.Type)
		if err != nil {
			skip(w.Name, "collectible", i, err)
			continue
		}
		idle := w.deps.Assets.FramesOr(rec.Path, spec.IdleColumns, 1, false, rec.Scale, ph.Width, ph.Height)
		c, err := obj.NewCollectible(idle, collected, rec.PosX, rec.PosY, kind, spec)
		if err != nil {
			skip(w.Name, "collectible", i, err)
			continue
		}
		collectibles = append(collectibles, c)
	}
	return collectibles
}

func (w *World) spawnEnemies(records []levels.EnemyData) []*obj.Enemy {
	spec := w.deps.Tuning.Enemy
	enemies := make([]*obj.Enemy, 0, len(records))
	for i, rec := range records {
		clips := w.clips(rec.Animations, enemyFlips, spec.Scale, spec.Placeholder.Width, spec.Placeholder.Height)
		e, err := obj.NewEnemy(clips, rec.PosX, rec.PosY, rec.LeftLimit, rec.RightLimit, spec)
		if err != nil {
			skip(w.Name, "enemy", i, err)
			continue
		}
		enemies = append(enemies, e)
	}
	return enemies
}

func (w *World) spawnTraps(records []levels.TrapData) []*obj.Trap {
	spec := w.deps.Tuning.Trap
	traps := make([]*obj.Trap, 0, len(records))
	for i, rec := range records {
		phW := int(float64(spec.Placeholder.Width) * max(rec.Scale, 1))
		phH := int(float64(spec.Placeholder.Height) * max(rec.Scale, 1))
		seq := w.deps.Assets.FramesOr(rec.Animations.Path, rec.Animations.Columns, 1, false, rec.Scale, phW, phH)
		t, err := obj.NewTrap(seq, rec.PosX, rec.PosY, rec.Scale, spec)
		if err != nil {
			skip(w.Name, "trap", i, err)
			continue
		}
		traps = append(traps, t)
	}
	return traps
}

func skip(level, kind string, index int, err error) {
	log.Warn("skipping level record", "level", level, "kind", kind, "index", index, "err", err)
}
