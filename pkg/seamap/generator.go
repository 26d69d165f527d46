package seamap

import (
	"math/rand"

	"pirate-server/internal/domain"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Параметры генерации архипелага.
const (
	DefaultWidth  = 20
	DefaultHeight = 15

	// Доля шума, выше которой клетка становится сушей.
	landThreshold = 0.38
	noiseScale    = 0.18

	treasureCount = 5
	enemyCount    = 4
	monsterCount  = 2
)

// Generate строит случайную карту от сида: шум opensimplex формирует
// острова, затем по открытой воде детерминированно расставляются
// сокровища, враги, чудовища и корабль. Один сид — одна и та же карта.
func Generate(seed int64, width, height int) (*domain.Chart, domain.Position) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	noise := opensimplex.New(seed)
	rng := rand.New(rand.NewSource(seed))

	grid := make([][]domain.CellType, height)
	for y := 0; y < height; y++ {
		row := make([]domain.CellType, width)
		for x := 0; x < width; x++ {
			v := noise.Eval2(float64(x)*noiseScale, float64(y)*noiseScale)
			if v > landThreshold {
				row[x] = domain.CellLand
			} else {
				row[x] = domain.CellWater
			}
		}
		grid[y] = row
	}

	chart := domain.NewChart(grid)

	// Гарантируем судоходность: если шум залил карту сушей, прорубаем
	// канал по средней широте.
	water := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if grid[y][x] == domain.CellWater {
				water++
			}
		}
	}
	if water < width*2 {
		for x := 0; x < width; x++ {
			chart.SetCell(domain.Position{X: x, Y: height / 2}, domain.CellWater)
			chart.SetCell(domain.Position{X: x, Y: height/2 + 1}, domain.CellWater)
		}
	}

	place := func(cell domain.CellType, count int) {
		for placed := 0; placed < count; {
			pos := domain.Position{X: rng.Intn(width), Y: rng.Intn(height)}
			if c, _ := chart.CellAt(pos); c == domain.CellWater {
				chart.SetCell(pos, cell)
				placed++
			}
		}
	}

	place(domain.CellTreasure, treasureCount)
	place(domain.CellEnemy, enemyCount)
	place(domain.CellMonster, monsterCount)

	// Корабль — на свободной воде. Маркер на карту не кладем: стартовая
	// клетка и так вода, как после загрузчика.
	for {
		pos := domain.Position{X: rng.Intn(width), Y: rng.Intn(height)}
		if c, _ := chart.CellAt(pos); c == domain.CellWater {
			return chart, pos
		}
	}
}
