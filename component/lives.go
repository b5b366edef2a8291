package component

// Lives counts remaining lives and the tick cooldown that follows a hit.
type Lives struct {
	Max      int
	Current  int
	Cooldown int
}

// NewLives creates a full Lives counter.
func NewLives(max int) *Lives {
	if max <= 0 {
		max = 1
	}
	return &Lives{Max: max, Current: max}
}

// Vulnerable reports whether a hit would be applied now.
func (l *Lives) Vulnerable() bool {
	return l != nil && l.Cooldown == 0
}

// Hit removes one life and starts the cooldown. Returns false while cooling down.
func (l *Lives) Hit(cooldown int) bool {
	if !l.Vulnerable() {
		return false
	}
	if l.Current > 0 {
		l.Current--
	}
	l.Cooldown = cooldown
	return true
}

// Tick counts the cooldown down by one.
func (l *Lives) Tick() {
	if l != nil && l.Cooldown > 0 {
		l.Cooldown--
	}
}

// Lost returns how many lives are gone.
func (l *Lives) Lost() int {
	if l == nil {
		return 0
	}
	return l.Max - l.Current
}
