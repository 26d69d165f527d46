package systems

import "pirate-server/internal/domain"

// HasLineOfSight проверяет прямую видимость между двумя клетками.
// Целочисленный алгоритм Брезенхэма; преградой считается только суша.
// Стартовая и конечная клетки не участвуют в проверке.
func HasLineOfSight(chart *domain.Chart, p1, p2 domain.Position) bool {
	if p1 == p2 {
		return true
	}

	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	sx, sy := p1.StepTo(p2)
	err := dx - dy

	for {
		cur := domain.Position{X: x0, Y: y0}
		if cur != p1 && cur != p2 {
			cell, ok := chart.CellAt(cur)
			if !ok {
				return false
			}
			if cell == domain.CellLand {
				return false
			}
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	return true
}
