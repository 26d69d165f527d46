package engine

import (
	"fmt"
	"sort"

	"pirate-server/internal/domain"
	"pirate-server/internal/systems"
)

// Запросный срез движка: чистые read-only операции для агентской обвязки.
// Безопасны к вызову в любой момент между командами.

// ScanSurroundings — отчет штурмана: все объекты в квадратном радиусе
// вокруг корабля, по категориям, с направлением и манхэттеновым
// расстоянием, отсортированы по близости.
func (g *Game) ScanSurroundings(radius int) domain.ScanReport {
	if radius <= 0 {
		radius = g.cfg.ScanRadius
	}
	report := domain.ScanReport{ScanRadius: radius}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			pos := g.Ship.Shift(dx, dy)
			cell, ok := g.Chart.CellAt(pos)
			if !ok || pos == g.Ship {
				continue
			}
			// Опционально отсекаем то, что закрыто сушей.
			if g.cfg.LineOfSightScan && !systems.HasLineOfSight(g.Chart, g.Ship, pos) {
				continue
			}

			sighting := domain.Sighting{
				Direction: g.Ship.DirectionDescriptor(pos),
				Distance:  g.Ship.ManhattanTo(pos),
				Position:  pos,
			}

			switch cell {
			case domain.CellTreasure:
				report.Treasures = append(report.Treasures, sighting)
			case domain.CellEnemy:
				report.Enemies = append(report.Enemies, sighting)
			case domain.CellMonster:
				report.Monsters = append(report.Monsters, sighting)
			case domain.CellLand:
				report.Land = append(report.Land, sighting)
			case domain.CellWater:
				report.Water = append(report.Water, sighting)
			}
		}
	}

	sortSightings(report.Treasures)
	sortSightings(report.Enemies)
	sortSightings(report.Monsters)
	sortSightings(report.Land)
	sortSightings(report.Water)

	for _, s := range append(append([]domain.Sighting{}, report.Enemies...), report.Monsters...) {
		if s.Distance <= 1 {
			report.ImmediateThreats = append(report.ImmediateThreats, s)
		}
	}
	for _, s := range report.Treasures {
		if s.Distance <= domain.MaxSailDistance {
			report.ReachableTreasures = append(report.ReachableTreasures, s)
		}
	}

	report.Summary = summarizeScan(report)
	return report
}

func sortSightings(s []domain.Sighting) {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].Distance != s[j].Distance {
			return s[i].Distance < s[j].Distance
		}
		if s[i].Position.Y != s[j].Position.Y {
			return s[i].Position.Y < s[j].Position.Y
		}
		return s[i].Position.X < s[j].Position.X
	})
}

func summarizeScan(r domain.ScanReport) string {
	var parts []string

	if len(r.Treasures) > 0 {
		closest := r.Treasures[0]
		parts = append(parts, fmt.Sprintf("Nearest treasure %d miles %s", closest.Distance, closest.Direction))
	}
	if len(r.ImmediateThreats) > 0 {
		parts = append(parts, fmt.Sprintf("DANGER: %d threat(s) within 1 mile!", len(r.ImmediateThreats)))
	}

	nearby := 0
	for _, s := range append(append([]domain.Sighting{}, r.Enemies...), r.Monsters...) {
		if s.Distance > 1 && s.Distance <= 2 {
			nearby++
		}
	}
	if nearby > 0 {
		parts = append(parts, fmt.Sprintf("%d threat(s) within 2 miles", nearby))
	}

	if len(parts) == 0 {
		return "Area appears safe"
	}

	summary := parts[0]
	for _, p := range parts[1:] {
		summary += " | " + p
	}
	return summary
}

// TargetsInRange — отчет канонира: все враждебные клетки в дальности
// пушек с направлением, уровнем угрозы и табличной вероятностью попадания.
func (g *Game) TargetsInRange() []domain.TargetInfo {
	var targets []domain.TargetInfo

	for dy := -domain.CannonRange; dy <= domain.CannonRange; dy++ {
		for dx := -domain.CannonRange; dx <= domain.CannonRange; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			distance := abs(dx) + abs(dy)
			if distance > domain.CannonRange {
				continue
			}
			pos := g.Ship.Shift(dx, dy)
			cell, ok := g.Chart.CellAt(pos)
			if !ok || !cell.IsHostile() {
				continue
			}
			targets = append(targets, domain.TargetInfo{
				Position:    pos,
				Type:        cell.Name(),
				ThreatLevel: cell.ThreatLevel(),
				Direction:   g.Ship.CardinalName(pos),
				Distance:    distance,
				HitChance:   systems.HitChance(distance),
			})
		}
	}

	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].Distance < targets[j].Distance
	})
	return targets
}

// PossibleMoves — отчет капитану: 4 стороны света x дистанции 1..3
// с той же трассировкой пути, что и у команды движения, встречами на
// пути и оценкой риска.
func (g *Game) PossibleMoves() []domain.MoveOption {
	directions := []struct {
		dx, dy int
		name   string
		letter string
	}{
		{0, -1, "North", "N"},
		{0, 1, "South", "S"},
		{-1, 0, "West", "W"},
		{1, 0, "East", "E"},
	}

	var options []domain.MoveOption
	for _, dir := range directions {
		for dist := 1; dist <= domain.MaxSailDistance; dist++ {
			dx, dy := dir.dx*dist, dir.dy*dist
			option := domain.MoveOption{
				Dx:            dx,
				Dy:            dy,
				Direction:     dir.name,
				Distance:      dist,
				CommandFormat: fmt.Sprintf("@%d%s", dist, dir.letter),
			}

			target := g.Ship.Shift(dx, dy)
			if !g.Chart.InBounds(target) {
				option.RiskAssessment = "Off-Map"
				option.BlockedReason = "position is outside map boundaries"
				options = append(options, option)
				continue
			}

			trace := systems.TraceCardinalPath(g.Chart, g.Ship, target)
			if !trace.Clear {
				option.RiskAssessment = "Blocked"
				option.BlockedReason = trace.Reason
				options = append(options, option)
				continue
			}

			option.CanMove = true
			option.Path = trace.Path
			for _, step := range trace.Path {
				cell, _ := g.Chart.CellAt(step)
				switch cell {
				case domain.CellTreasure:
					option.TreasuresOnPath++
				case domain.CellEnemy:
					option.EnemiesOnPath++
				case domain.CellMonster:
					option.MonstersOnPath++
				default:
					continue
				}
				option.Encounters = append(option.Encounters,
					fmt.Sprintf("%s at %s", cell.Name(), step))
			}

			// Худшая встреча определяет метку: монстры > враги > сокровища.
			switch {
			case option.MonstersOnPath > 0:
				option.RiskAssessment = fmt.Sprintf("Very Dangerous - %d Monster(s)", option.MonstersOnPath)
			case option.EnemiesOnPath > 0:
				option.RiskAssessment = fmt.Sprintf("Dangerous - %d Enemy(s)", option.EnemiesOnPath)
			case option.TreasuresOnPath > 0:
				option.RiskAssessment = fmt.Sprintf("Rewarding - %d Treasure(s)", option.TreasuresOnPath)
			default:
				option.RiskAssessment = "Safe"
			}

			options = append(options, option)
		}
	}

	return options
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
