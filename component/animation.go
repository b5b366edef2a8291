package component

import "image"

// Frame is a single drawable animation frame. *ebiten.Image satisfies it.
type Frame interface {
	Bounds() image.Rectangle
}

// Sequence is an ordered list of frames sliced from a sprite sheet.
type Sequence []Frame

// Size returns the pixel size of the first frame, or zero for an empty sequence.
func (s Sequence) Size() (int, int) {
	if len(s) == 0 || s[0] == nil {
		return 0, 0
	}
	b := s[0].Bounds()
	return b.Dx(), b.Dy()
}

// Accumulator gates an action on accumulated milliseconds. Once Elapsed
// reaches Rate it resets to zero and the remainder is dropped.
type Accumulator struct {
	Elapsed int
	Rate    int
}

// Add accumulates delta and reports whether the threshold was crossed.
func (a *Accumulator) Add(delta int) bool {
	if a == nil {
		return false
	}
	a.Elapsed += delta
	if a.Elapsed >= a.Rate {
		a.Elapsed = 0
		return true
	}
	return false
}

// Animation plays one named sequence at a time, stepping the frame index on a
// millisecond timer. At most one step happens per Update.
type Animation struct {
	name  string
	seq   Sequence
	frame int
	timer Accumulator
}

// NewAnimation creates an animation starting on seq. rate is milliseconds per frame.
func NewAnimation(name string, seq Sequence, rate int) *Animation {
	return &Animation{name: name, seq: seq, timer: Accumulator{Rate: rate}}
}

// Name returns the name of the current sequence.
func (a *Animation) Name() string {
	if a == nil {
		return ""
	}
	return a.name
}

// Set switches to another sequence, keeping the frame index within range.
func (a *Animation) Set(name string, seq Sequence) {
	if a == nil {
		return
	}
	a.name = name
	a.seq = seq
	if a.frame >= len(seq) {
		a.frame = max(len(seq)-1, 0)
	}
}

// Reset rewinds to the first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.frame = 0
}

// Seek moves to frame i, wrapping around the sequence in both directions.
func (a *Animation) Seek(i int) {
	if a == nil || len(a.seq) == 0 {
		return
	}
	n := len(a.seq)
	a.frame = ((i % n) + n) % n
}

// Frame returns the current frame index.
func (a *Animation) Frame() int {
	if a == nil {
		return 0
	}
	return a.frame
}

// Len returns the length of the current sequence.
func (a *Animation) Len() int {
	if a == nil {
		return 0
	}
	return len(a.seq)
}

// Update accumulates delta and steps the frame when the rate is crossed.
func (a *Animation) Update(delta int) bool {
	if a == nil || !a.timer.Add(delta) {
		return false
	}
	if len(a.seq) > 0 {
		a.frame = (a.frame + 1) % len(a.seq)
	}
	return true
}

// Current returns the frame to draw, or nil when the sequence is empty.
func (a *Animation) Current() Frame {
	if a == nil || len(a.seq) == 0 {
		return nil
	}
	return a.seq[a.frame]
}
