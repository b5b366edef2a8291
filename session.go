package main

import (
	"strings"

	"github.com/milk9111/catchme/common"
	"github.com/milk9111/catchme/levels"
)

// session tracks one run through the levels: which level is up, how long
// the run has been played and what each level scored.
type session struct {
	names  []string
	level  int
	scores []int
	played int
}

func newSession(start int) *session {
	s := &session{names: levels.Names()}
	s.reset(start)
	return s
}

// reset starts a new run at the 1-based level start, clamped to the
// bundled levels.
func (s *session) reset(start int) {
	s.level = common.Clamp(start-1, 0, len(s.names)-1)
	s.scores = make([]int, len(s.names))
	s.played = 0
}

// advance adds ms of unpaused play time.
func (s *session) advance(ms int) {
	if ms > 0 {
		s.played += ms
	}
}

// Seconds returns the whole seconds played so far.
func (s *session) Seconds() int { return s.played / 1000 }

// setScore records the running score of the current level.
func (s *session) setScore(score int) {
	if s.level < len(s.scores) {
		s.scores[s.level] = score
	}
}

// Total sums the scores of every level in this run.
func (s *session) Total() int {
	total := 0
	for _, v := range s.scores {
		total += v
	}
	return total
}

// LevelName returns the file name of the current level.
func (s *session) LevelName() string {
	if len(s.names) == 0 {
		return ""
	}
	return s.names[s.level]
}

// screenKey returns the game.yaml screen key of the current level.
func (s *session) screenKey() string {
	return strings.TrimSuffix(s.LevelName(), ".json")
}

// next moves to the following level. It reports false after the last one.
func (s *session) next() bool {
	if levels.Next(s.LevelName()) == "" {
		return false
	}
	s.level++
	return true
}
