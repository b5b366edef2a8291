package component

// Cue is a discrete sound event raised by the simulation.
type Cue int

const (
	CueJump Cue = iota + 1
	CuePlayerHit
	CueEnemyHit
	CuePickup
	CuePickupSpecial
	CueShot
)

var cueNames = map[Cue]string{
	CueJump:          "jump",
	CuePlayerHit:     "player_hit",
	CueEnemyHit:      "enemy_hit",
	CuePickup:        "pickup",
	CuePickupSpecial: "pickup_special",
	CueShot:          "shot",
}

func (c Cue) String() string {
	if n, ok := cueNames[c]; ok {
		return n
	}
	return "unknown"
}

// Cues is a FIFO of cues raised during a tick.
type Cues struct {
	items []Cue
}

// Emit queues a cue.
func (q *Cues) Emit(c Cue) {
	if q == nil {
		return
	}
	q.items = append(q.items, c)
}

// Len returns the number of queued cues.
func (q *Cues) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all queued cues and clears the queue.
func (q *Cues) Drain() []Cue {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
