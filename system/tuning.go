package system

import "github.com/milk9111/catchme/prefabs"

// Tuning bundles the prefab specs entities are built from.
type Tuning struct {
	Player      prefabs.PlayerSpec
	Enemy       prefabs.EnemySpec
	Collectible prefabs.CollectibleSpec
	Trap        prefabs.TrapSpec
	Projectile  prefabs.ProjectileSpec
	Platform    prefabs.PlatformSpec
}

// DefaultTuning returns the stock specs without touching the prefab files.
func DefaultTuning() Tuning {
	return Tuning{
		Player:      prefabs.DefaultPlayerSpec(),
		Enemy:       prefabs.DefaultEnemySpec(),
		Collectible: prefabs.DefaultCollectibleSpec(),
		Trap:        prefabs.DefaultTrapSpec(),
		Projectile:  prefabs.DefaultProjectileSpec(),
		Platform:    prefabs.DefaultPlatformSpec(),
	}
}

// LoadTuning reads every prefab spec, disk copies first.
func LoadTuning() (Tuning, error) {
	var t Tuning
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return t, err
	}
	enemy, err := prefabs.LoadEnemySpec()
	if err != nil {
		return t, err
	}
	collectible, err := prefabs.LoadCollectibleSpec()
	if err != nil {
		return t, err
	}
	trap, err := prefabs.LoadTrapSpec()
	if err != nil {
		return t, err
	}
	projectile, err := prefabs.LoadProjectileSpec()
	if err != nil {
		return t, err
	}
	platform, err := prefabs.LoadPlatformSpec()
	if err != nil {
		return t, err
	}
	t.Player = *player
	t.Enemy = *enemy
	t.Collectible = *collectible
	t.Trap = *trap
	t.Projectile = *projectile
	t.Platform = *platform
	return t, nil
}
