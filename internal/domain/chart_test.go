package domain

import "testing"

func chartFromRows(rows []string) *Chart {
	grid := make([][]CellType, len(rows))
	for y, row := range rows {
		grid[y] = make([]CellType, len(row))
		for x := 0; x < len(row); x++ {
			grid[y][x] = CellType(row[x])
		}
	}
	return NewChart(grid)
}

func TestChartBounds(t *testing.T) {
	chart := chartFromRows([]string{
		"WWW",
		"WLW",
	})

	if chart.Width != 3 || chart.Height != 2 {
		t.Fatalf("expected 3x2, got %dx%d", chart.Width, chart.Height)
	}

	if _, ok := chart.CellAt(Position{X: -1, Y: 0}); ok {
		t.Error("expected out-of-bounds for x=-1")
	}
	if _, ok := chart.CellAt(Position{X: 0, Y: 2}); ok {
		t.Error("expected out-of-bounds for y=2")
	}
	if cell, ok := chart.CellAt(Position{X: 1, Y: 1}); !ok || cell != CellLand {
		t.Errorf("expected Land at (1,1), got %c ok=%t", cell, ok)
	}

	// SetCell вне границ — no-op, не паника.
	chart.SetCell(Position{X: 99, Y: 99}, CellTreasure)
}

func TestIsTraversable(t *testing.T) {
	chart := chartFromRows([]string{
		"WLT",
		"EMW",
	})

	traversable := []Position{{0, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	for _, pos := range traversable {
		if !chart.IsTraversable(pos) {
			t.Errorf("expected %s traversable", pos)
		}
	}
	if chart.IsTraversable(Position{X: 1, Y: 0}) {
		t.Error("Land must not be traversable")
	}
	if chart.IsTraversable(Position{X: 3, Y: 0}) {
		t.Error("out-of-bounds must not be traversable")
	}
}

func TestCellsInRadius(t *testing.T) {
	chart := chartFromRows([]string{
		"WWWWW",
		"WWWWW",
		"WWWWW",
	})

	// Угол: box обрезается границами.
	cells := chart.CellsInRadius(Position{X: 0, Y: 0}, 1)
	if len(cells) != 4 {
		t.Errorf("corner radius 1: expected 4 cells, got %d", len(cells))
	}

	// Центр: полный box 3x3.
	cells = chart.CellsInRadius(Position{X: 2, Y: 1}, 1)
	if len(cells) != 9 {
		t.Errorf("center radius 1: expected 9 cells, got %d", len(cells))
	}
}

func TestPositionsOfRowMajorOrder(t *testing.T) {
	chart := chartFromRows([]string{
		"WEW",
		"MWE",
	})

	hostiles := chart.Hostiles()
	want := []Position{{1, 0}, {0, 1}, {2, 1}}
	if len(hostiles) != len(want) {
		t.Fatalf("expected %d hostiles, got %d", len(want), len(hostiles))
	}
	for i := range want {
		if hostiles[i] != want[i] {
			t.Errorf("hostile %d: expected %s, got %s", i, want[i], hostiles[i])
		}
	}

	enemies := chart.PositionsOf(CellEnemy)
	if len(enemies) != 2 || enemies[0] != (Position{1, 0}) || enemies[1] != (Position{2, 1}) {
		t.Errorf("unexpected enemy scan order: %v", enemies)
	}
}

func TestRowsRoundTrip(t *testing.T) {
	rows := []string{"WLT", "EMW"}
	chart := chartFromRows(rows)

	got := chart.Rows()
	for i, row := range rows {
		if got[i] != row {
			t.Errorf("row %d: expected %q, got %q", i, row, got[i])
		}
	}
}
