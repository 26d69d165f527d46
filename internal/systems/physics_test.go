package systems

import (
	"testing"

	"pirate-server/internal/domain"
)

func TestHasLineOfSightClearWater(t *testing.T) {
	chart := chartFromRows([]string{
		"WWWWW",
		"WWWWW",
		"WWWWW",
	})

	if !HasLineOfSight(chart, domain.Position{X: 0, Y: 0}, domain.Position{X: 4, Y: 2}) {
		t.Error("expected clear line of sight over open water")
	}
	if !HasLineOfSight(chart, domain.Position{X: 2, Y: 1}, domain.Position{X: 2, Y: 1}) {
		t.Error("a point always sees itself")
	}
}

func TestHasLineOfSightBlockedByLand(t *testing.T) {
	chart := chartFromRows([]string{
		"WWWWW",
		"WWLWW",
		"WWWWW",
	})

	if HasLineOfSight(chart, domain.Position{X: 0, Y: 1}, domain.Position{X: 4, Y: 1}) {
		t.Error("expected land at (2,1) to block the line")
	}
}

func TestHasLineOfSightEndpointsNotBlocking(t *testing.T) {
	// Сама цель может быть сушей — важно лишь то, что между.
	chart := chartFromRows([]string{
		"WWL",
	})

	if !HasLineOfSight(chart, domain.Position{X: 0, Y: 0}, domain.Position{X: 2, Y: 0}) {
		t.Error("target cell itself must not block visibility")
	}
}
