package systems

import (
	"fmt"

	"pirate-server/internal/domain"
)

// PathResult — результат трассировки пути. Не меняет состояние карты!
type PathResult struct {
	Clear bool
	// Шаги по порядку, без стартовой клетки, включая конечную.
	Path []domain.Position

	// Заполнены при блокировке.
	BlockedAt   domain.Position
	BlockedCell domain.CellType
	OutOfBounds bool
	Reason      string
}

// TraceCardinalPath проверяет достижимость end из start одиночными шагами
// по осям: сначала весь сдвиг по X, затем весь по Y. Это намеренно НЕ поиск
// пути: корабль ходит строго по одной оси, порядок осей важен лишь для
// диагональных запросов, которых вызывающие не делают.
//
// Максимальная суммарная длина — MaxSailDistance. Трассировка обрывается на
// первой непроходимой клетке с указанием, что именно ее перегородило.
func TraceCardinalPath(chart *domain.Chart, start, end domain.Position) PathResult {
	dist := start.ManhattanTo(end)
	if dist > domain.MaxSailDistance {
		return PathResult{
			Reason: fmt.Sprintf("distance %d exceeds maximum sailing range of %d", dist, domain.MaxSailDistance),
		}
	}

	stepX, stepY := start.StepTo(end)

	var path []domain.Position
	cur := start

	advance := func(dx, dy int) *PathResult {
		cur = cur.Shift(dx, dy)
		cell, ok := chart.CellAt(cur)
		if !ok {
			return &PathResult{
				BlockedAt:   cur,
				OutOfBounds: true,
				Reason:      fmt.Sprintf("position %s is outside map boundaries", cur),
			}
		}
		if cell == domain.CellLand {
			return &PathResult{
				BlockedAt:   cur,
				BlockedCell: cell,
				Reason:      fmt.Sprintf("path blocked by %s at %s", cell.Name(), cur),
			}
		}
		path = append(path, cur)
		return nil
	}

	for cur.X != end.X {
		if blocked := advance(stepX, 0); blocked != nil {
			return *blocked
		}
	}
	for cur.Y != end.Y {
		if blocked := advance(0, stepY); blocked != nil {
			return *blocked
		}
	}

	return PathResult{Clear: true, Path: path}
}
