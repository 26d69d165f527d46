package engine

import (
	"fmt"
	"math/rand"

	"pirate-server/internal/domain"
	"pirate-server/internal/systems"
	"pirate-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Game — агрегат состояния одной партии. Владеет картой и всеми
// скалярами; мутирует их на месте через Move/FireCannon/AdvanceHostiles.
// Движок строго однопоточный: одна команда за раз, запросы читают
// состояние между командами без побочных эффектов.
type Game struct {
	Chart *domain.Chart
	Ship  domain.Position

	Lives              int
	Cannonballs        int
	Score              int
	TurnCount          int
	TreasuresCollected int
	TotalTreasures     int
	EnemiesDefeated    int
	MonstersDefeated   int
	Victory            bool
	GameOver           bool

	cfg Config
	rng *rand.Rand
}

// New строит партию из загруженной карты. Маркер корабля к этому моменту
// уже снят загрузчиком (клетка — вода), start указывает на нее.
func New(chart *domain.Chart, start domain.Position, cfg Config) *Game {
	g := &Game{
		Chart:          chart,
		Ship:           start,
		Lives:          domain.StartingLives,
		Cannonballs:    domain.StartingCannonballs,
		TotalTreasures: len(chart.PositionsOf(domain.CellTreasure)),
		cfg:            cfg,
		rng:            rand.New(rand.NewSource(cfg.Seed)),
	}

	logger.Log.WithFields(logrus.Fields{
		"component":       "engine",
		"map_size":        fmt.Sprintf("%dx%d", chart.Width, chart.Height),
		"ship_start":      start,
		"total_treasures": g.TotalTreasures,
		"seed":            cfg.Seed,
	}).Info("Game initialized.")

	return g
}

// Move двигает корабль на вектор (dx, dy), манхэттен не больше 3.
// Валидация пути полностью предшествует мутации: при отказе состояние
// не тронуто. При успехе эффекты применяются пошагово вдоль пути.
func (g *Game) Move(dx, dy int) domain.MoveResult {
	result := domain.MoveResult{
		OldPosition: g.Ship,
		NewPosition: g.Ship,
	}

	if dx == 0 && dy == 0 {
		result.Message = "movement vector cannot be zero"
		return result
	}

	target := g.Ship.Shift(dx, dy)
	trace := systems.TraceCardinalPath(g.Chart, g.Ship, target)
	if !trace.Clear {
		result.Message = trace.Reason
		blocked := domain.Encounter{
			Position: trace.BlockedAt,
			Cell:     trace.BlockedCell,
			Type:     trace.BlockedCell.Name(),
		}
		if trace.OutOfBounds {
			blocked.Type = "OutOfBounds"
		}
		blocked.Description = trace.Reason
		result.BlockedBy = &blocked
		return result
	}

	// Путь чист от суши — применяем эффекты каждой клетки по порядку.
	for _, step := range trace.Path {
		cell, _ := g.Chart.CellAt(step)
		switch cell {
		case domain.CellTreasure:
			g.collectTreasure(step)
			result.TreasuresGained++
			result.Encounters = append(result.Encounters, domain.Encounter{
				Position:    step,
				Cell:        cell,
				Type:        cell.Name(),
				Description: fmt.Sprintf("collected treasure at %s", step),
			})
		case domain.CellEnemy, domain.CellMonster:
			g.takeDamage(step, cell)
			result.DamageTaken++
			result.Encounters = append(result.Encounters, domain.Encounter{
				Position:    step,
				Cell:        cell,
				Type:        cell.Name(),
				Description: fmt.Sprintf("rammed %s at %s, took 1 damage", cell.Name(), step),
			})
		}
	}

	g.Ship = target
	g.TurnCount++

	// Страховка: враг мог оказаться на нашей клетке после прошлой
	// вражеской фазы.
	g.resolveShipOverlap(&result)

	g.checkEndConditions()

	result.Success = true
	result.NewPosition = g.Ship
	result.Path = trace.Path
	result.Message = g.describeMoveSummary(result)
	return result
}

// FireCannon стреляет по клетке. Ядро тратится на любой валидный выстрел —
// попадание, промах или пустая вода. Без ядер и вне дальности выстрела
// нет и ядро не тратится.
func (g *Game) FireCannon(target domain.Position) domain.FireResult {
	result := domain.FireResult{
		Target:               target,
		Distance:             g.Ship.ManhattanTo(target),
		CannonballsRemaining: g.Cannonballs,
	}

	if g.Cannonballs <= 0 {
		result.Message = "No cannonballs remaining! Collect treasures to get more ammunition."
		return result
	}
	if result.Distance > domain.CannonRange {
		result.Message = fmt.Sprintf("target at %s is out of range: distance %d, cannon range %d",
			target, result.Distance, domain.CannonRange)
		return result
	}

	// Выстрел состоялся — ядро списано независимо от исхода.
	g.Cannonballs--
	result.CannonballUsed = true
	result.CannonballsRemaining = g.Cannonballs

	cell, _ := g.Chart.CellAt(target)
	if !cell.IsHostile() {
		result.Message = fmt.Sprintf("cannonball splashes into empty water at %s", target)
		return result
	}

	hit, chance := systems.ResolveShot(g.rng, cell, result.Distance)
	result.HitChance = chance
	if !hit {
		result.Message = fmt.Sprintf("shot missed the %s at %s (hit chance was %.0f%%)",
			cell.Name(), target, chance*100)
		return result
	}

	g.Chart.SetCell(target, domain.CellWater)
	switch cell {
	case domain.CellEnemy:
		g.EnemiesDefeated++
		g.Score += domain.ScorePerEnemy
	case domain.CellMonster:
		g.MonstersDefeated++
		g.Score += domain.ScorePerMonster
	}

	result.Success = true
	result.TargetDestroyed = true
	result.Message = fmt.Sprintf("direct hit! %s destroyed at %s. Cannonballs left: %d, score: %d",
		cell.Name(), target, g.Cannonballs, g.Score)
	return result
}

// AdvanceHostiles — фаза врагов, вызывается один раз за ход после
// разрешения хода корабля. Враги обрабатываются построчно и независимо,
// без симультанности: ранний ходок меняет карту для позднего.
func (g *Game) AdvanceHostiles() []domain.HostileMove {
	var moves []domain.HostileMove

	for _, pos := range g.Chart.Hostiles() {
		cell, _ := g.Chart.CellAt(pos)
		if !cell.IsHostile() {
			continue // клетка уже очищена в этой же фазе
		}

		// Вне радиуса преследования враг неактивен: хода нет и записи
		// в журнале нет (это не "blocked").
		if pos.ChebyshevTo(g.Ship) > domain.PursuitRange {
			continue
		}

		step := systems.ComputeHostileStep(g.Chart, pos, g.Ship)
		entry := domain.HostileMove{
			EntityType: cell.Name(),
			From:       pos,
			To:         pos,
		}

		switch {
		case step.Collision:
			g.takeDamage(pos, cell)
			entry.To = step.Candidate
			entry.Collision = true
			entry.DistanceToShip = 0
			entry.Message = fmt.Sprintf("%s rammed the ship! Lives remaining: %d", cell.Name(), g.Lives)
		case step.Move:
			g.Chart.SetCell(pos, domain.CellWater)
			g.Chart.SetCell(step.Candidate, cell)
			entry.To = step.Candidate
			entry.DistanceToShip = step.Candidate.ChebyshevTo(g.Ship)
		default:
			entry.Blocked = true
			entry.DistanceToShip = pos.ChebyshevTo(g.Ship)
		}

		moves = append(moves, entry)
	}

	// Та же страховка, что и после хода корабля.
	g.resolveShipOverlap(nil)
	g.checkEndConditions()

	return moves
}

// Status возвращает снимок всех скаляров плюс врагов в радиусе преследования.
func (g *Game) Status() domain.Status {
	status := domain.Status{
		ShipPosition:       g.Ship,
		Lives:              g.Lives,
		Cannonballs:        g.Cannonballs,
		Score:              g.Score,
		TreasuresCollected: g.TreasuresCollected,
		TotalTreasures:     g.TotalTreasures,
		EnemiesDefeated:    g.EnemiesDefeated,
		MonstersDefeated:   g.MonstersDefeated,
		TurnCount:          g.TurnCount,
		GameOver:           g.GameOver,
		Victory:            g.Victory,
	}

	for _, pos := range g.Chart.Hostiles() {
		if pos.ChebyshevTo(g.Ship) > domain.PursuitRange {
			continue
		}
		cell, _ := g.Chart.CellAt(pos)
		status.Pursuers = append(status.Pursuers, domain.Pursuer{
			Type:      cell.Name(),
			Position:  pos,
			Direction: g.Ship.DirectionDescriptor(pos),
			Distance:  pos.ChebyshevTo(g.Ship),
		})
	}

	return status
}

// --- внутренняя механика ---

func (g *Game) collectTreasure(pos domain.Position) {
	g.TreasuresCollected++
	g.Cannonballs += domain.CannonballsPerTreasure
	g.Score += domain.ScorePerTreasure
	g.Chart.SetCell(pos, domain.CellWater)

	logger.Log.WithFields(logrus.Fields{
		"component":   "engine",
		"position":    pos,
		"collected":   g.TreasuresCollected,
		"total":       g.TotalTreasures,
		"cannonballs": g.Cannonballs,
	}).Info("Treasure collected.")
}

// takeDamage применяет контактный урон и снимает врага с карты.
// Симметрично для тарана кораблем и тарана врагом.
func (g *Game) takeDamage(pos domain.Position, cell domain.CellType) {
	g.Lives--
	g.Chart.SetCell(pos, domain.CellWater)

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"hostile":   cell.Name(),
		"position":  pos,
		"lives":     g.Lives,
	}).Warn("Ship took contact damage.")
}

// resolveShipOverlap сканирует карту на врага, совпавшего с позицией
// корабля, и разруливает это как столкновение. result может быть nil
// (вызов из вражеской фазы).
func (g *Game) resolveShipOverlap(result *domain.MoveResult) {
	for _, pos := range g.Chart.Hostiles() {
		if pos != g.Ship {
			continue
		}
		cell, _ := g.Chart.CellAt(pos)
		g.takeDamage(pos, cell)
		if result != nil {
			result.DamageTaken++
			result.Encounters = append(result.Encounters, domain.Encounter{
				Position:    pos,
				Cell:        cell,
				Type:        cell.Name(),
				Description: fmt.Sprintf("collided with %s occupying the ship's cell", cell.Name()),
			})
		}
	}
}

// checkEndConditions выставляет флаги конца партии. Победа оценивается
// первой: ход, собравший последнее сокровище ценой последней жизни,
// засчитывается как победа.
func (g *Game) checkEndConditions() {
	if g.TotalTreasures > 0 && g.TreasuresCollected >= g.TotalTreasures {
		g.Victory = true
		g.GameOver = true
		return
	}
	if g.Lives <= 0 {
		g.GameOver = true
	}
}

func (g *Game) describeMoveSummary(r domain.MoveResult) string {
	msg := fmt.Sprintf("sailed from %s to %s", r.OldPosition, g.Ship)
	if r.TreasuresGained > 0 {
		msg += fmt.Sprintf(", collected %d treasure(s)", r.TreasuresGained)
	}
	if r.DamageTaken > 0 {
		msg += fmt.Sprintf(", took %d damage", r.DamageTaken)
	}
	if g.Victory {
		msg += " — all treasures collected, victory!"
	} else if g.GameOver {
		msg += " — the ship has been destroyed"
	}
	return msg
}
