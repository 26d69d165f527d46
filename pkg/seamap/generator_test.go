package seamap

import (
	"testing"

	"pirate-server/internal/domain"
)

func TestGenerateDeterministicBySeed(t *testing.T) {
	chartA, startA := Generate(1234, 20, 15)
	chartB, startB := Generate(1234, 20, 15)

	if startA != startB {
		t.Errorf("same seed produced different starts: %s vs %s", startA, startB)
	}
	rowsA, rowsB := chartA.Rows(), chartB.Rows()
	for y := range rowsA {
		if rowsA[y] != rowsB[y] {
			t.Fatalf("same seed produced different maps at row %d", y)
		}
	}
}

func TestGeneratePlacesEntities(t *testing.T) {
	chart, start := Generate(99, 0, 0)

	if chart.Width != DefaultWidth || chart.Height != DefaultHeight {
		t.Errorf("expected default %dx%d, got %dx%d", DefaultWidth, DefaultHeight, chart.Width, chart.Height)
	}
	if got := len(chart.PositionsOf(domain.CellTreasure)); got != treasureCount {
		t.Errorf("expected %d treasures, got %d", treasureCount, got)
	}
	if got := len(chart.PositionsOf(domain.CellEnemy)); got != enemyCount {
		t.Errorf("expected %d enemies, got %d", enemyCount, got)
	}
	if got := len(chart.PositionsOf(domain.CellMonster)); got != monsterCount {
		t.Errorf("expected %d monsters, got %d", monsterCount, got)
	}

	// Корабль стартует на открытой воде.
	if cell, ok := chart.CellAt(start); !ok || cell != domain.CellWater {
		t.Errorf("ship must start on water, got %c", cell)
	}
}
