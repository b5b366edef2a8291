package common

import "testing"

func TestRectIntersects(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", R(0, 0, 10, 10), R(5, 5, 10, 10), true},
		{"contained", R(0, 0, 10, 10), R(2, 2, 2, 2), true},
		{"touching_edge", R(0, 0, 10, 10), R(10, 0, 10, 10), false},
		{"touching_bottom", R(0, 0, 10, 10), R(0, 10, 10, 10), false},
		{"apart", R(0, 0, 10, 10), R(30, 30, 5, 5), false},
		{"zero_width", R(0, 0, 0, 10), R(0, 0, 10, 10), false},
		{"zero_height_other", R(0, 0, 10, 10), R(2, 2, 5, 0), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Intersects(c.b); got != c.want {
				t.Fatalf("%v.Intersects(%v) = %v, want %v", c.a, c.b, got, c.want)
			}
			if got := c.b.Intersects(c.a); got != c.want {
				t.Fatalf("intersection not symmetric for %v and %v", c.a, c.b)
			}
		})
	}
}

func TestRectCenterAndTranslate(t *testing.T) {
	r := R(10, 20, 31, 41)
	if r.CenterX() != 25 || r.CenterY() != 40 {
		t.Fatalf("center = (%d,%d), want (25,40)", r.CenterX(), r.CenterY())
	}
	moved := r.Translate(-3, 7)
	if moved != R(7, 27, 31, 41) {
		t.Fatalf("translate = %v", moved)
	}
	if r.Bottom() != 61 || r.Right() != 41 {
		t.Fatalf("bottom/right = %d/%d", r.Bottom(), r.Right())
	}
	c := Centered(100, 50, 30, 30)
	if c != R(85, 35, 30, 30) {
		t.Fatalf("centered = %v", c)
	}
}

func TestClockCarriesRemainder(t *testing.T) {
	c := NewClock(120)
	want := []int{8, 8, 9, 8, 8, 9}
	for i, w := range want {
		if got := c.Tick(); got != w {
			t.Fatalf("tick %d = %d, want %d", i, got, w)
		}
	}

	total := 0
	c = NewClock(60)
	for range 60 {
		total += c.Tick()
	}
	if total != 1000 {
		t.Fatalf("one second of ticks = %dms, want 1000", total)
	}

	if NewClock(0).TPS() != FPS {
		t.Fatalf("zero tps should fall back to %d", FPS)
	}
}

func TestAbsClamp(t *testing.T) {
	if Abs(-4) != 4 || Abs(3) != 3 {
		t.Fatal("abs")
	}
	if Clamp(-1, 0, 5) != 0 || Clamp(9, 0, 5) != 5 || Clamp(3, 0, 5) != 3 {
		t.Fatal("clamp")
	}
}
