package domain

// Chart — морская карта: прямоугольная сетка классов клеток.
// Размер фиксируется при загрузке, сами клетки мутируют по ходу игры
// (сокровища собираются, враги гибнут и перемещаются).
type Chart struct {
	Grid   [][]CellType
	Width  int
	Height int
}

// NewChart оборачивает готовую сетку. Строки обязаны быть одной длины,
// это гарантирует загрузчик/генератор (pkg/seamap).
func NewChart(grid [][]CellType) *Chart {
	c := &Chart{Grid: grid, Height: len(grid)}
	if c.Height > 0 {
		c.Width = len(grid[0])
	}
	return c
}

// InBounds проверяет, что позиция внутри карты.
func (c *Chart) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < c.Width && pos.Y >= 0 && pos.Y < c.Height
}

// CellAt возвращает класс клетки и признак попадания в границы.
func (c *Chart) CellAt(pos Position) (CellType, bool) {
	if !c.InBounds(pos) {
		return 0, false
	}
	return c.Grid[pos.Y][pos.X], true
}

// SetCell перезаписывает клетку. Вне границ — no-op.
func (c *Chart) SetCell(pos Position, cell CellType) {
	if c.InBounds(pos) {
		c.Grid[pos.Y][pos.X] = cell
	}
}

// IsTraversable — внутри карты и не суша. Сокровища и враги проходимы:
// вход в такую клетку разрешен и разруливается правилами движка.
func (c *Chart) IsTraversable(pos Position) bool {
	cell, ok := c.CellAt(pos)
	return ok && cell != CellLand
}

// CellsInRadius возвращает все клетки в квадратном радиусе вокруг центра
// (box по Чебышеву, не круг), включая сам центр, только внутри границ.
func (c *Chart) CellsInRadius(center Position, radius int) map[Position]CellType {
	cells := make(map[Position]CellType)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			pos := center.Shift(dx, dy)
			if cell, ok := c.CellAt(pos); ok {
				cells[pos] = cell
			}
		}
	}
	return cells
}

// PositionsOf возвращает все клетки данного класса в порядке построчного
// сканирования. Порядок детерминирован — на нем держится жадный AI.
func (c *Chart) PositionsOf(cell CellType) []Position {
	var positions []Position
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.Grid[y][x] == cell {
				positions = append(positions, Position{X: x, Y: y})
			}
		}
	}
	return positions
}

// Hostiles возвращает все враждебные клетки (E и M) одним построчным
// проходом, сохраняя общий порядок обработки.
func (c *Chart) Hostiles() []Position {
	var positions []Position
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.Grid[y][x].IsHostile() {
				positions = append(positions, Position{X: x, Y: y})
			}
		}
	}
	return positions
}

// Rows отдает карту строками символов для снапшотов фронтенду.
func (c *Chart) Rows() []string {
	rows := make([]string, c.Height)
	for y := 0; y < c.Height; y++ {
		row := make([]byte, c.Width)
		for x := 0; x < c.Width; x++ {
			row[x] = byte(c.Grid[y][x])
		}
		rows[y] = string(row)
	}
	return rows
}
