package domain

// Структурные результаты команд и запросов. Движок не бросает паник и не
// возвращает error за правила игры: любой исход — флаг успеха плюс факты,
// из которых внешний слой (агенты, веб) собирает свой текст.

// Encounter — одно событие на пути корабля.
type Encounter struct {
	Position    Position `json:"position"`
	Cell        CellType `json:"-"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
}

// MoveResult — исход команды движения.
type MoveResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	OldPosition Position    `json:"oldPosition"`
	NewPosition Position    `json:"newPosition"`
	Path        []Position  `json:"path,omitempty"`
	Encounters  []Encounter `json:"encounters,omitempty"`

	TreasuresGained int `json:"treasuresGained"`
	DamageTaken     int `json:"damageTaken"`

	// Заполнены только при отказе.
	BlockedBy *Encounter `json:"blockedBy,omitempty"`
}

// FireResult — исход выстрела.
type FireResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	Target               Position `json:"target"`
	Distance             int      `json:"distance"`
	HitChance            float64  `json:"hitChance,omitempty"`
	TargetDestroyed      bool     `json:"targetDestroyed"`
	CannonballsRemaining int      `json:"cannonballsRemaining"`
	CannonballUsed       bool     `json:"cannonballUsed"`
}

// HostileMove — одна запись фазы движения врагов.
type HostileMove struct {
	EntityType string   `json:"entityType"`
	From       Position `json:"from"`
	To         Position `json:"to"`

	Blocked   bool `json:"blocked,omitempty"`
	Collision bool `json:"collision,omitempty"`

	// Чебышево расстояние до корабля после хода (или на месте, если заперт).
	DistanceToShip int    `json:"distanceToShip"`
	Message        string `json:"message,omitempty"`
}

// Pursuer — враг в радиусе преследования (для статуса).
type Pursuer struct {
	Type      string   `json:"type"`
	Position  Position `json:"position"`
	Direction string   `json:"direction"`
	Distance  int      `json:"distance"`
}

// Status — снимок скалярного состояния игры.
type Status struct {
	ShipPosition       Position  `json:"shipPosition"`
	Lives              int       `json:"lives"`
	Cannonballs        int       `json:"cannonballs"`
	Score              int       `json:"score"`
	TreasuresCollected int       `json:"treasuresCollected"`
	TotalTreasures     int       `json:"totalTreasures"`
	EnemiesDefeated    int       `json:"enemiesDefeated"`
	MonstersDefeated   int       `json:"monstersDefeated"`
	TurnCount          int       `json:"turnCount"`
	GameOver           bool      `json:"gameOver"`
	Victory            bool      `json:"victory"`
	Pursuers           []Pursuer `json:"pursuers,omitempty"`
}

// Sighting — один объект в отчете сканирования.
type Sighting struct {
	Direction string   `json:"direction"`
	Distance  int      `json:"distance"`
	Position  Position `json:"-"`
}

// ScanReport — отчет штурмана об округе.
type ScanReport struct {
	ScanRadius int `json:"scanRadius"`

	Treasures []Sighting `json:"treasuresNearby"`
	Enemies   []Sighting `json:"enemiesNearby"`
	Monsters  []Sighting `json:"monstersNearby"`
	Land      []Sighting `json:"landObstacles"`
	Water     []Sighting `json:"safeWater"`

	ImmediateThreats   []Sighting `json:"immediateThreats"`
	ReachableTreasures []Sighting `json:"reachableTreasures"`
	Summary            string     `json:"summary"`
}

// TargetInfo — цель в зоне досягаемости пушек (для канонира).
type TargetInfo struct {
	Position    Position `json:"position"`
	Type        string   `json:"type"`
	ThreatLevel string   `json:"threatLevel"`
	Direction   string   `json:"direction"`
	Distance    int      `json:"distance"`
	HitChance   float64  `json:"hitChance"`
}

// MoveOption — один кандидат хода для капитана.
type MoveOption struct {
	Dx            int    `json:"dx"`
	Dy            int    `json:"dy"`
	Direction     string `json:"direction"`
	Distance      int    `json:"distance"`
	CommandFormat string `json:"commandFormat"` // "@2N" и т.п.
	CanMove       bool   `json:"canMove"`

	Path            []Position `json:"path,omitempty"`
	Encounters      []string   `json:"encounters,omitempty"`
	TreasuresOnPath int        `json:"treasuresOnPath"`
	EnemiesOnPath   int        `json:"enemiesOnPath"`
	MonstersOnPath  int        `json:"monstersOnPath"`

	RiskAssessment string `json:"riskAssessment"`
	BlockedReason  string `json:"blockedReason,omitempty"`
}
