package main

import (
	"testing"

	"github.com/milk9111/catchme/component"
	"github.com/milk9111/catchme/system"
)

func TestCueAudio(t *testing.T) {
	tuning, err := system.LoadTuning()
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	got := cueAudio(tuning)
	if len(got) != len(cueSounds) {
		t.Fatalf("resolved %d cues, want %d", len(got), len(cueSounds))
	}

	cases := []struct {
		cue  component.Cue
		file string
	}{
		{component.CuePickup, "recoleccion.mp3"},
		{component.CuePickupSpecial, "fruit_special.mp3"},
		{component.CueJump, "salto.mp3"},
		{component.CuePlayerHit, "muerte_player.mp3"},
		{component.CueEnemyHit, "muerte_enemigo.mp3"},
		{component.CueShot, "disparo.mp3"},
	}
	for _, c := range cases {
		if f := got[c.cue].File; f != c.file {
			t.Fatalf("cue %v plays %q, want %q", c.cue, f, c.file)
		}
	}

	if len(cueAudio(system.DefaultTuning())) != 0 {
		t.Fatalf("stock tuning carries no audio entries")
	}
}
