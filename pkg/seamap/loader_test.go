package seamap

import (
	"strings"
	"testing"

	"pirate-server/internal/domain"
)

func TestParseBareRows(t *testing.T) {
	chart, start, err := Parse(strings.NewReader("WWT\nWOW\nLEM\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if chart.Width != 3 || chart.Height != 3 {
		t.Errorf("expected 3x3, got %dx%d", chart.Width, chart.Height)
	}
	if start != (domain.Position{X: 1, Y: 1}) {
		t.Errorf("expected ship start (1,1), got %s", start)
	}
	// Маркер корабля заменен водой.
	if cell, _ := chart.CellAt(start); cell != domain.CellWater {
		t.Errorf("ship marker must become water, got %c", cell)
	}
	if cell, _ := chart.CellAt(domain.Position{X: 2, Y: 2}); cell != domain.CellMonster {
		t.Errorf("expected monster at (2,2), got %c", cell)
	}
}

func TestParseCommaSeparatedRows(t *testing.T) {
	chart, start, err := Parse(strings.NewReader("W,W,T\nW,O,W\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chart.Width != 3 || chart.Height != 2 {
		t.Errorf("expected 3x2, got %dx%d", chart.Width, chart.Height)
	}
	if start != (domain.Position{X: 1, Y: 1}) {
		t.Errorf("expected start (1,1), got %s", start)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name   string
		layout string
	}{
		{"empty", ""},
		{"no ship marker", "WWW\nWWW\n"},
		{"two ship markers", "OWW\nWWO\n"},
		{"ragged rows", "OWW\nWW\n"},
		{"unknown code", "OWX\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, _, err := Parse(strings.NewReader(c.layout)); err == nil {
				t.Errorf("expected load error for %s", c.name)
			}
		})
	}
}
