package seamap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"pirate-server/internal/domain"
)

// Формат карты: прямоугольник однобуквенных кодов клеток, строка на ряд.
// Поддерживаются и голые ряды ("WWLTW"), и CSV-ряды ("W,W,L,T,W") — в таком
// виде хранились исходные карты. Ровно один маркер 'O'; при загрузке он
// заменяется водой, его позиция — старт корабля.

// Load читает карту из файла. Любая ошибка формата фатальна для партии.
func Load(path string) (*domain.Chart, domain.Position, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.Position{}, fmt.Errorf("open map file: %w", err)
	}
	defer f.Close()

	chart, start, err := Parse(f)
	if err != nil {
		return nil, domain.Position{}, fmt.Errorf("map file %s: %w", path, err)
	}
	return chart, start, nil
}

// Parse разбирает карту из потока.
func Parse(r io.Reader) (*domain.Chart, domain.Position, error) {
	var grid [][]domain.CellType
	shipCount := 0
	var start domain.Position

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		line = strings.ReplaceAll(line, ",", "")

		row := make([]domain.CellType, 0, len(line))
		for x, ch := range line {
			cell := domain.CellType(ch)
			switch cell {
			case domain.CellWater, domain.CellLand, domain.CellTreasure,
				domain.CellEnemy, domain.CellMonster:
				row = append(row, cell)
			case domain.CellShip:
				// Маркер корабля существует только в файле.
				shipCount++
				start = domain.Position{X: x, Y: len(grid)}
				row = append(row, domain.CellWater)
			default:
				return nil, domain.Position{}, fmt.Errorf("unknown cell code %q at row %d, column %d", ch, len(grid), x)
			}
		}
		grid = append(grid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, domain.Position{}, fmt.Errorf("read map: %w", err)
	}

	if len(grid) == 0 {
		return nil, domain.Position{}, fmt.Errorf("map layout is empty")
	}

	width := len(grid[0])
	for y, row := range grid {
		if len(row) != width {
			return nil, domain.Position{}, fmt.Errorf("ragged map: row %d has %d cells, expected %d", y, len(row), width)
		}
	}

	if shipCount == 0 {
		return nil, domain.Position{}, fmt.Errorf("no ship marker (O) found on the map")
	}
	if shipCount > 1 {
		return nil, domain.Position{}, fmt.Errorf("multiple ship markers (O) found on the map: %d", shipCount)
	}

	return domain.NewChart(grid), start, nil
}
