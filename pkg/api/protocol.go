package api

import (
	"encoding/json"

	"pirate-server/internal/domain"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse — полный снимок партии, рассылаемый после каждой команды.
// Фронтенд и боты не держат своего состояния: каждый кадр самодостаточен.
type ServerResponse struct {
	// Type: "INIT" при первом кадре подписчика, дальше "UPDATE".
	Type string `json:"type"`

	Grid *GridMeta `json:"grid,omitempty"`

	// Map — строки карты из однобуквенных кодов клеток (W/L/T/E/M).
	Map []string `json:"map,omitempty"`

	Status *domain.Status `json:"status,omitempty"`

	// Результат команды, породившей этот кадр (если была).
	LastMove *domain.MoveResult `json:"lastMove,omitempty"`
	LastFire *domain.FireResult `json:"lastFire,omitempty"`

	// HostileMoves — журнал вражеской фазы этого хода.
	HostileMoves []domain.HostileMove `json:"hostileMoves,omitempty"`

	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta — размеры карты, чтобы клиент подготовил сетку рендера.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// LogEntry — одна строка игрового журнала.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"` // INFO, COMBAT, MOVEMENT, ERROR
	Timestamp int64  `json:"timestamp"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand — корневой объект всех сообщений клиента.
type ClientCommand struct {
	// Token — идентификатор подписчика (бот или websocket-сессия).
	Token string `json:"token,omitempty"`

	// Action: MOVE, FIRE, WAIT, INIT.
	Action string `json:"action"`

	Payload json.RawMessage `json:"payload,omitempty"`
}

const (
	ActionInit = "INIT"
	ActionMove = "MOVE"
	ActionFire = "FIRE"
	ActionWait = "WAIT"
)

// MovePayload — вектор хода для MOVE.
type MovePayload struct {
	Dx int `json:"dx"`
	Dy int `json:"dy"`
}

// FirePayload — координаты цели для FIRE.
type FirePayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}
