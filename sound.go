package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/catchme/assets"
	"github.com/milk9111/catchme/component"
	"github.com/milk9111/catchme/prefabs"
	"github.com/milk9111/catchme/system"
)

// cueSounds maps each cue to the prefab audio entry that voices it.
var cueSounds = map[component.Cue]string{
	component.CueJump:          "jump",
	component.CuePlayerHit:     "player_hit",
	component.CueEnemyHit:      "enemy_hit",
	component.CuePickup:        "pickup",
	component.CuePickupSpecial: "pickup_special",
	component.CueShot:          "shot",
}

// soundBoard plays cue effects and one music track at a time. A nil board
// is silent.
type soundBoard struct {
	audio   *assets.Audio
	effects map[component.Cue]*assets.Effect

	music     *audio.Player
	track     string
	musicMute bool
}

func newSoundBoard(a *assets.Audio, t system.Tuning) *soundBoard {
	b := &soundBoard{audio: a}
	b.loadEffects(t)
	return b
}

// cueAudio resolves every cue to its entry in the prefab audio lists. Cues
// without an entry are left out.
func cueAudio(t system.Tuning) map[component.Cue]prefabs.AudioSpec {
	var entries []prefabs.AudioSpec
	entries = append(entries, t.Player.Audio...)
	entries = append(entries, t.Enemy.Audio...)
	entries = append(entries, t.Collectible.Audio...)
	entries = append(entries, t.Projectile.Audio...)

	out := map[component.Cue]prefabs.AudioSpec{}
	for cue, name := range cueSounds {
		if spec, ok := prefabs.FindAudio(entries, name); ok {
			out[cue] = spec
		}
	}
	return out
}

// loadEffects replaces the cue effects with the ones t names.
func (b *soundBoard) loadEffects(t system.Tuning) {
	if b == nil {
		return
	}
	b.effects = map[component.Cue]*assets.Effect{}
	for cue, spec := range cueAudio(t) {
		e, err := b.audio.Effect(spec.File, spec.Volume)
		if err != nil {
			log.Warn("sound unavailable", "cue", cue, "file", spec.File, "err", err)
			continue
		}
		b.effects[cue] = e
	}
}

// play voices every cue raised this tick.
func (b *soundBoard) play(cues []component.Cue) {
	if b == nil {
		return
	}
	for _, c := range cues {
		b.effects[c].Play()
	}
}

// playMusic switches to the screen's track. The same track keeps playing
// across screens; a screen without music stops the current one.
func (b *soundBoard) playMusic(s prefabs.ScreenSpec) {
	if b == nil {
		return
	}
	if s.Music.File == "" {
		b.stopMusic()
		return
	}
	if s.Music.File == b.track && b.music != nil {
		return
	}
	b.stopMusic()

	p, err := b.audio.Music(s.Music.File, s.Music.Volume, s.Loop)
	if err != nil {
		log.Warn("music unavailable", "track", s.Music.Name, "file", s.Music.File, "err", err)
		return
	}
	b.music = p
	b.track = s.Music.File
	if !b.musicMute {
		p.Play()
	}
}

func (b *soundBoard) stopMusic() {
	if b.music != nil {
		b.music.Pause()
		_ = b.music.Close()
	}
	b.music = nil
	b.track = ""
}

// musicOn restarts the current track from the beginning.
func (b *soundBoard) musicOn() {
	if b == nil {
		return
	}
	b.musicMute = false
	if b.music != nil {
		_ = b.music.Rewind()
		b.music.Play()
	}
}

// musicOff silences the current and later tracks until musicOn.
func (b *soundBoard) musicOff() {
	if b == nil {
		return
	}
	b.musicMute = true
	if b.music != nil {
		b.music.Pause()
	}
}
