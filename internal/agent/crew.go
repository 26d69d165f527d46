package agent

import (
	"encoding/json"
	"time"

	"pirate-server/internal/domain"
	"pirate-server/internal/engine"
	"pirate-server/pkg/api"
	"pirate-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Crew — headless-экипаж: штурман, канонир и капитан, играющие без
// человека. Это ВНЕШНИЙ потребитель движка: экипаж пользуется только
// запросным срезом (scan/targets/moves) и командами, как веб-клиент.
//
// Такт экипажа повторяет оригинальный ход: доклад штурмана, решение
// канонира (возможно, выстрел), приказ капитана (ход), затем движок сам
// отыгрывает вражескую фазу.
type Crew struct {
	Service *engine.GameService

	// Captain принимает решение о ходе. По умолчанию — скриптованная
	// эвристика; может быть заменен LLM-капитаном.
	Captain CaptainBrain

	// Пауза между ходами, чтобы за партией можно было наблюдать.
	Interval time.Duration
}

// CaptainBrain выбирает приказ по докладам. ok=false означает "стоим".
type CaptainBrain interface {
	DecideMove(status domain.Status, scan domain.ScanReport, moves []domain.MoveOption) (api.MovePayload, bool)
}

func NewCrew(service *engine.GameService) *Crew {
	return &Crew{
		Service:  service,
		Captain:  ScriptedCaptain{},
		Interval: time.Second,
	}
}

// Run играет партию до конца. Запускается в горутине.
func (c *Crew) Run() {
	crewLog := logger.Log.WithField("component", "crew")
	crewLog.Info("Crew taking over the helm.")

	for !c.Service.Status().GameOver {
		c.takeTurn(crewLog)
		time.Sleep(c.Interval)
	}

	status := c.Service.Status()
	crewLog.WithFields(logrus.Fields{
		"victory": status.Victory,
		"score":   status.Score,
		"turns":   status.TurnCount,
	}).Info("Voyage finished.")
}

func (c *Crew) takeTurn(crewLog *logrus.Entry) {
	status := c.Service.Status()
	scan := c.Service.ScanSurroundings(0)
	crewLog.WithField("turn", status.TurnCount).Info("Navigator: " + scan.Summary)

	// Канонир: стреляем, когда выстрел скорее всего не пропадет.
	if target, ok := pickTarget(c.Service.TargetsInRange(), status.Cannonballs); ok {
		payload, _ := json.Marshal(api.FirePayload{X: target.Position.X, Y: target.Position.Y})
		frame := c.Service.ProcessCommand(api.ClientCommand{Action: api.ActionFire, Payload: payload})
		if frame.LastFire != nil {
			crewLog.Info("Cannoneer: " + frame.LastFire.Message)
		}
		if c.Service.Status().GameOver {
			return
		}
	}

	// Капитан: приказ о движении завершает ход.
	move, ok := c.Captain.DecideMove(status, scan, c.Service.PossibleMoves())
	if !ok {
		c.Service.ProcessCommand(api.ClientCommand{Action: api.ActionWait})
		crewLog.Info("Captain: holding position")
		return
	}

	payload, _ := json.Marshal(move)
	frame := c.Service.ProcessCommand(api.ClientCommand{Action: api.ActionMove, Payload: payload})
	if frame.LastMove != nil {
		crewLog.Info("Captain: " + frame.LastMove.Message)
	}
}

// pickTarget выбирает цель: сперва чудовища, потом ближние цели, и только
// с шансом не хуже монетки — ядра слишком дороги для дальних выстрелов.
func pickTarget(targets []domain.TargetInfo, cannonballs int) (domain.TargetInfo, bool) {
	if cannonballs <= 0 {
		return domain.TargetInfo{}, false
	}

	best := -1
	bestScore := 0.0
	for i, t := range targets {
		if t.HitChance < 0.5 {
			continue
		}
		score := t.HitChance
		if t.Type == "Monster" {
			score *= 2 // чудовище опаснее и дороже по очкам
		}
		if best == -1 || score > bestScore {
			best, bestScore = i, score
		}
	}
	if best == -1 {
		return domain.TargetInfo{}, false
	}
	return targets[best], true
}

// ScriptedCaptain — эвристический капитан: идем за сокровищами, не лезем
// под чудовищ, иначе выбираем безопасный ход подлиннее.
type ScriptedCaptain struct{}

func (ScriptedCaptain) DecideMove(_ domain.Status, scan domain.ScanReport, moves []domain.MoveOption) (api.MovePayload, bool) {
	best := -1
	bestScore := 0
	for i, m := range moves {
		if !m.CanMove {
			continue
		}
		score := 1 + m.Distance // даже пустой ход двигает разведку
		score += m.TreasuresOnPath * 100
		score -= m.EnemiesOnPath * 150
		score -= m.MonstersOnPath * 400

		// Подтягиваемся к ближайшему сокровищу за пределами пути.
		if len(scan.Treasures) > 0 {
			t := scan.Treasures[0].Position
			endIdx := len(m.Path) - 1
			end := m.Path[endIdx]
			score -= end.ManhattanTo(t) * 5
		}

		if best == -1 || score > bestScore {
			best, bestScore = i, score
		}
	}
	if best == -1 {
		return api.MovePayload{}, false
	}
	return api.MovePayload{Dx: moves[best].Dx, Dy: moves[best].Dy}, true
}
