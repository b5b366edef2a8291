package common

// Window and playfield dimensions in pixels.
const (
	Width  = 1200
	Height = 800
	// Ground is the y past which the player is always supported.
	Ground = 556
	FPS    = 120
)

// Direction is the horizontal facing of an entity.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}
