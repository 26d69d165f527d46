package systems

import "pirate-server/internal/domain"

// HostileStep — решение жадного AI для одного врага.
type HostileStep struct {
	// Candidate — выбранная клетка (валидна при Move или Collision).
	Candidate domain.Position
	// Move — враг перемещается на Candidate (вода, не корабль).
	Move bool
	// Collision — Candidate совпала с кораблем: таран, а не ход.
	Collision bool
	// Ни одна из трех кандидатных клеток не подошла.
	Blocked bool
}

// ComputeHostileStep вычисляет шаг преследования: единичный шаг к кораблю
// по каждой оси, кандидаты в порядке диагональ -> горизонталь -> вертикаль.
// Берется первая клетка, которая внутри карты и является водой; совпадение
// с позицией корабля — столкновение.
//
// AI намеренно жадный и локальный: без обхода препятствий и координации.
// Более умный поиск пути менял бы наблюдаемую сложность игры.
func ComputeHostileStep(chart *domain.Chart, from, ship domain.Position) HostileStep {
	stepX, stepY := from.StepTo(ship)

	candidates := []domain.Position{
		from.Shift(stepX, stepY),
		from.Shift(stepX, 0),
		from.Shift(0, stepY),
	}

	for _, candidate := range candidates {
		if candidate == from {
			continue // нулевой шаг по выровненной оси
		}
		if candidate == ship {
			return HostileStep{Candidate: candidate, Collision: true}
		}
		if cell, ok := chart.CellAt(candidate); ok && cell == domain.CellWater {
			return HostileStep{Candidate: candidate, Move: true}
		}
	}

	return HostileStep{Blocked: true}
}
