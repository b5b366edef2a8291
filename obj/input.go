package obj

import "github.com/hajimehoshi/ebiten/v2"

// Key is a logical game key.
type Key int

const (
	KeyUp Key = iota
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
	KeyTab
	keyCount
)

var keyBindings = [keyCount][]ebiten.Key{
	KeyUp:     {ebiten.KeyArrowUp, ebiten.KeyW},
	KeyLeft:   {ebiten.KeyArrowLeft, ebiten.KeyA},
	KeyRight:  {ebiten.KeyArrowRight, ebiten.KeyD},
	KeySpace:  {ebiten.KeySpace},
	KeyEscape: {ebiten.KeyEscape},
	KeyTab:    {ebiten.KeyTab},
}

// Input is the set of keys held down during one tick. Edges are derived by
// the entities that need them.
type Input struct {
	keys [keyCount]bool
}

// InputOf returns a snapshot with keys held.
func InputOf(keys ...Key) Input {
	var in Input
	for _, k := range keys {
		in.Set(k, true)
	}
	return in
}

func (in Input) Pressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return in.keys[k]
}

func (in *Input) Set(k Key, down bool) {
	if k < 0 || k >= keyCount {
		return
	}
	in.keys[k] = down
}

// PollInput reads the keyboard.
func PollInput() Input {
	var in Input
	for k, bound := range keyBindings {
		for _, key := range bound {
			if ebiten.IsKeyPressed(key) {
				in.keys[k] = true
				break
			}
		}
	}
	return in
}
