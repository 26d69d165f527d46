package domain

import "testing"

func TestPositionDistances(t *testing.T) {
	a := Position{X: 2, Y: 3}
	b := Position{X: 5, Y: 1}

	if d := a.ManhattanTo(b); d != 5 {
		t.Errorf("Manhattan: expected 5, got %d", d)
	}
	if d := a.ChebyshevTo(b); d != 3 {
		t.Errorf("Chebyshev: expected 3, got %d", d)
	}
	if d := a.ManhattanTo(a); d != 0 {
		t.Errorf("Manhattan to self: expected 0, got %d", d)
	}
}

func TestPositionShiftDoesNotMutate(t *testing.T) {
	a := Position{X: 1, Y: 1}
	b := a.Shift(2, -1)

	if a != (Position{X: 1, Y: 1}) {
		t.Error("Shift mutated the receiver")
	}
	if b != (Position{X: 3, Y: 0}) {
		t.Errorf("Shift: expected (3,0), got %s", b)
	}
}

func TestStepTo(t *testing.T) {
	cases := []struct {
		from, to Position
		sx, sy   int
	}{
		{Position{0, 0}, Position{5, 5}, 1, 1},
		{Position{5, 5}, Position{0, 0}, -1, -1},
		{Position{3, 3}, Position{3, 7}, 0, 1},
		{Position{3, 3}, Position{3, 3}, 0, 0},
	}
	for _, c := range cases {
		sx, sy := c.from.StepTo(c.to)
		if sx != c.sx || sy != c.sy {
			t.Errorf("StepTo %s->%s: expected (%d,%d), got (%d,%d)", c.from, c.to, c.sx, c.sy, sx, sy)
		}
	}
}

func TestDirectionDescriptor(t *testing.T) {
	ship := Position{X: 5, Y: 5}

	cases := []struct {
		to   Position
		want string
	}{
		{Position{5, 3}, "2N"},
		{Position{5, 7}, "2S"},
		{Position{8, 5}, "3E"},
		{Position{3, 5}, "2W"},
		{Position{6, 3}, "2N + 1E"},
		{Position{3, 6}, "1S + 2W"},
		{Position{5, 5}, "same position"},
	}
	for _, c := range cases {
		if got := ship.DirectionDescriptor(c.to); got != c.want {
			t.Errorf("DirectionDescriptor to %s: expected %q, got %q", c.to, c.want, got)
		}
	}
}

func TestCardinalName(t *testing.T) {
	ship := Position{X: 5, Y: 5}

	if got := ship.CardinalName(Position{9, 6}); got != "East" {
		t.Errorf("expected East, got %s", got)
	}
	if got := ship.CardinalName(Position{5, 2}); got != "North" {
		t.Errorf("expected North, got %s", got)
	}
	// При равенстве осей приоритет у вертикали.
	if got := ship.CardinalName(Position{7, 7}); got != "South" {
		t.Errorf("expected South, got %s", got)
	}
}
