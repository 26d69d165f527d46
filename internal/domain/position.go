package domain

import "fmt"

// Position — координаты клетки. Передается по значению,
// сравнение — обычное ==.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shift возвращает новую позицию со смещением, не меняя текущую.
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// ManhattanTo — |dx| + |dy|. Метрика хода корабля и дальности пушек.
func (p Position) ManhattanTo(other Position) int {
	return abs(other.X-p.X) + abs(other.Y-p.Y)
}

// ChebyshevTo — max(|dx|, |dy|). Метрика радиуса преследования.
func (p Position) ChebyshevTo(other Position) int {
	dx := abs(other.X - p.X)
	dy := abs(other.Y - p.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// StepTo возвращает единичный шаг по каждой оси в сторону цели
// (знак разности; 0, если ось уже выровнена).
func (p Position) StepTo(other Position) (int, int) {
	return sign(other.X - p.X), sign(other.Y - p.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// DirectionDescriptor описывает направление от p к other в виде
// "2N + 1E" — так штурман докладывает агентам.
func (p Position) DirectionDescriptor(other Position) string {
	dx := other.X - p.X
	dy := other.Y - p.Y

	var parts []string
	if dy < 0 {
		parts = append(parts, fmt.Sprintf("%dN", -dy))
	} else if dy > 0 {
		parts = append(parts, fmt.Sprintf("%dS", dy))
	}
	if dx > 0 {
		parts = append(parts, fmt.Sprintf("%dE", dx))
	} else if dx < 0 {
		parts = append(parts, fmt.Sprintf("%dW", -dx))
	}

	switch len(parts) {
	case 2:
		return parts[0] + " + " + parts[1]
	case 1:
		return parts[0]
	}
	return "same position"
}

// CardinalName — доминирующее направление от p к other ("North", "East"...).
// При равенстве осей приоритет у вертикали, как в исходном прицеливании.
func (p Position) CardinalName(other Position) string {
	dx := other.X - p.X
	dy := other.Y - p.Y
	if abs(dx) > abs(dy) {
		if dx > 0 {
			return "East"
		}
		return "West"
	}
	if dy > 0 {
		return "South"
	}
	return "North"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
