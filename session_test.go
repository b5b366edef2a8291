package main

import "testing"

func TestSessionStartLevel(t *testing.T) {
	cases := []struct {
		start int
		want  string
	}{
		{1, "level_1.json"},
		{2, "level_2.json"},
		{3, "level_3.json"},
		{0, "level_1.json"},
		{9, "level_3.json"},
	}
	for _, c := range cases {
		s := newSession(c.start)
		if got := s.LevelName(); got != c.want {
			t.Fatalf("start %d: level %q, want %q", c.start, got, c.want)
		}
	}
}

func TestSessionRun(t *testing.T) {
	s := newSession(1)
	if s.screenKey() != "level_1" {
		t.Fatalf("screen key %q", s.screenKey())
	}

	s.setScore(300)
	s.advance(1500)
	s.advance(-20)
	if !s.next() {
		t.Fatalf("expected a second level")
	}
	s.setScore(50)
	s.setScore(250)
	s.advance(700)
	if !s.next() {
		t.Fatalf("expected a third level")
	}
	s.setScore(100)
	if s.next() {
		t.Fatalf("no level after the third")
	}

	if s.Total() != 650 {
		t.Fatalf("total %d, want 650", s.Total())
	}
	if s.Seconds() != 2 {
		t.Fatalf("seconds %d, want 2", s.Seconds())
	}

	s.reset(1)
	if s.Total() != 0 || s.Seconds() != 0 || s.LevelName() != "level_1.json" {
		t.Fatalf("reset left %d points, %ds, level %q", s.Total(), s.Seconds(), s.LevelName())
	}
}
