package engine

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"pirate-server/internal/domain"
	"pirate-server/internal/network"
	"pirate-server/pkg/api"
	"pirate-server/pkg/logger"
	"pirate-server/pkg/utils"
)

// GameService — обвязка движка для сервера и агентов. Сериализует команды
// (инвариант "одна команда в полете") и рассылает снапшоты через хаб.
//
// Структура хода повторяет оригинальную: команда FIRE не завершает ход
// экипажа, а MOVE и WAIT завершают — после них отыгрывается вражеская фаза.
type GameService struct {
	mu   sync.Mutex
	Game *Game
	Hub  *network.Broadcaster

	logs []api.LogEntry
}

func NewService(game *Game) *GameService {
	return &GameService{
		Game: game,
		Hub:  network.NewBroadcaster(),
	}
}

// ProcessCommand выполняет одну команду целиком, рассылает кадр и
// возвращает его же вызвавшему.
func (s *GameService) ProcessCommand(cmd api.ClientCommand) api.ServerResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = nil
	frame := api.ServerResponse{Type: "UPDATE"}

	if s.Game.GameOver && cmd.Action != api.ActionInit {
		s.addLog("The voyage is over. No further commands accepted.", "ERROR")
		return s.finishFrame(frame)
	}

	switch cmd.Action {
	case api.ActionInit:
		frame.Type = "INIT"
		s.addLog("Welcome aboard. The hunt for treasure begins.", "INFO")

	case api.ActionMove:
		var p api.MovePayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			s.addLog("malformed MOVE payload: "+err.Error(), "ERROR")
			break
		}
		if err := p.Validate(); err != nil {
			s.addLog("illegal MOVE: "+err.Error(), "ERROR")
			break
		}
		result := s.Game.Move(p.Dx, p.Dy)
		frame.LastMove = &result
		if result.Success {
			s.addLog(result.Message, "MOVEMENT")
			frame.HostileMoves = s.hostilePhase()
		} else {
			s.addLog(result.Message, "ERROR")
		}

	case api.ActionFire:
		var p api.FirePayload
		if err := json.Unmarshal(cmd.Payload, &p); err != nil {
			s.addLog("malformed FIRE payload: "+err.Error(), "ERROR")
			break
		}
		result := s.Game.FireCannon(domain.Position{X: p.X, Y: p.Y})
		frame.LastFire = &result
		s.addLog(result.Message, "COMBAT")

	case api.ActionWait:
		s.addLog("The ship holds position.", "INFO")
		frame.HostileMoves = s.hostilePhase()

	default:
		s.addLog("unknown action: "+cmd.Action, "ERROR")
	}

	return s.finishFrame(frame)
}

// hostilePhase отыгрывает фазу врагов и переводит ее журнал в лог кадра.
// Если партия уже кончилась на ходе самого корабля, фаза не отыгрывается.
func (s *GameService) hostilePhase() []domain.HostileMove {
	var moves []domain.HostileMove
	if !s.Game.GameOver {
		moves = s.Game.AdvanceHostiles()
	}
	for _, m := range moves {
		switch {
		case m.Collision:
			s.addLog(m.Message, "COMBAT")
		case m.Blocked:
			s.addLog(fmt.Sprintf("%s at %s is blocked by terrain", m.EntityType, m.From), "MOVEMENT")
		default:
			s.addLog(fmt.Sprintf("%s moved %s -> %s (distance to ship: %d)",
				m.EntityType, m.From, m.To, m.DistanceToShip), "MOVEMENT")
		}
	}
	if s.Game.GameOver {
		if s.Game.Victory {
			s.addLog("All treasures collected — VICTORY!", "INFO")
		} else {
			s.addLog("The ship has been destroyed. Game over.", "INFO")
		}
	}
	return moves
}

func (s *GameService) finishFrame(frame api.ServerResponse) api.ServerResponse {
	status := s.Game.Status()
	frame.Status = &status
	frame.Grid = &api.GridMeta{Width: s.Game.Chart.Width, Height: s.Game.Chart.Height}
	frame.Map = s.Game.Chart.Rows()
	frame.Logs = s.logs

	s.Hub.Broadcast(frame)
	return frame
}

func (s *GameService) addLog(text, logType string) {
	logger.Log.WithField("component", "game_service").Debug(text)
	s.logs = append(s.logs, api.LogEntry{
		ID:        utils.GenerateID(),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
}

// --- Read-only запросы (для HTTP и агентов) ---

func (s *GameService) Status() domain.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.Status()
}

func (s *GameService) ScanSurroundings(radius int) domain.ScanReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.ScanSurroundings(radius)
}

func (s *GameService) TargetsInRange() []domain.TargetInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.TargetsInRange()
}

func (s *GameService) PossibleMoves() []domain.MoveOption {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.PossibleMoves()
}
