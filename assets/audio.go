package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

type stream interface {
	io.ReadSeeker
	Length() int64
}

// Audio decodes sounds from the asset tree into ebiten players.
type Audio struct {
	ctx  *audio.Context
	fsys fs.FS
}

// NewAudio returns an Audio bound to the process audio context.
func NewAudio(fsys fs.FS) *Audio {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return &Audio{ctx: ctx, fsys: fsys}
}

// Effect is a fully decoded sound that can overlap itself.
type Effect struct {
	ctx    *audio.Context
	pcm    []byte
	volume float64
}

// Play starts a new voice of the effect.
func (e *Effect) Play() {
	if e == nil || len(e.pcm) == 0 {
		return
	}
	p := e.ctx.NewPlayerFromBytes(e.pcm)
	p.SetVolume(e.volume)
	p.Play()
}

// Effect decodes a short sound into memory.
func (a *Audio) Effect(p string, volume float64) (*Effect, error) {
	s, err := a.decode(p)
	if err != nil {
		return nil, err
	}
	pcm, err := io.ReadAll(s)
	if err != nil {
		return nil, fmt.Errorf("read sound %s: %w", p, err)
	}
	return &Effect{ctx: a.ctx, pcm: pcm, volume: volume}, nil
}

// Music returns a streaming player, looping forever when loop is set.
func (a *Audio) Music(p string, volume float64, loop bool) (*audio.Player, error) {
	s, err := a.decode(p)
	if err != nil {
		return nil, err
	}
	var src io.Reader = s
	if loop {
		src = audio.NewInfiniteLoop(s, s.Length())
	}
	player, err := a.ctx.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("music %s: %w", p, err)
	}
	player.SetVolume(volume)
	return player, nil
}

func (a *Audio) decode(p string) (stream, error) {
	b, err := fs.ReadFile(a.fsys, soundPath(p))
	if err != nil {
		return nil, fmt.Errorf("read sound %s: %w", p, err)
	}
	r := bytes.NewReader(b)
	sr := a.ctx.SampleRate()

	var s stream
	switch ext := strings.ToLower(p); {
	case strings.HasSuffix(ext, ".wav"):
		s, err = wav.DecodeWithSampleRate(sr, r)
	case strings.HasSuffix(ext, ".mp3"):
		s, err = mp3.DecodeWithSampleRate(sr, r)
	case strings.HasSuffix(ext, ".ogg"):
		s, err = vorbis.DecodeWithSampleRate(sr, r)
	default:
		return nil, fmt.Errorf("sound %s: unsupported format", p)
	}
	if err != nil {
		return nil, fmt.Errorf("decode sound %s: %w", p, err)
	}
	return s, nil
}
