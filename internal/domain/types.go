package domain

// CellType — однобуквенный класс клетки карты.
// Карта хранит только эти метки: у сущностей нет состояния кроме
// "находится в этой клетке".
type CellType byte

const (
	CellWater    CellType = 'W' // вода, проходима
	CellLand     CellType = 'L' // суша, непроходима
	CellTreasure CellType = 'T' // сокровище, собирается при входе
	CellEnemy    CellType = 'E' // вражеский корабль
	CellMonster  CellType = 'M' // морское чудовище
	CellShip     CellType = 'O' // стартовый маркер корабля, только в файле карты
)

// IsHostile сообщает, враждебна ли клетка.
func (c CellType) IsHostile() bool {
	return c == CellEnemy || c == CellMonster
}

// Name возвращает человекочитаемое имя класса (для сообщений агентам).
func (c CellType) Name() string {
	switch c {
	case CellWater:
		return "Water"
	case CellLand:
		return "Land"
	case CellTreasure:
		return "Treasure"
	case CellEnemy:
		return "Enemy"
	case CellMonster:
		return "Monster"
	case CellShip:
		return "Ship"
	}
	return "Unknown"
}

// ThreatLevel враждебной клетки: Monster=High, Enemy=Medium.
func (c CellType) ThreatLevel() string {
	switch c {
	case CellMonster:
		return "High"
	case CellEnemy:
		return "Medium"
	}
	return "None"
}

// Стартовые ресурсы и правила начисления очков.
const (
	StartingLives       = 3
	StartingCannonballs = 25

	CannonballsPerTreasure = 2
	ScorePerTreasure       = 10
	ScorePerEnemy          = 10
	ScorePerMonster        = 50

	// MaxSailDistance — максимальная дальность хода корабля (манхэттен).
	MaxSailDistance = 3
	// CannonRange — дальность пушек (манхэттен).
	CannonRange = 5
	// PursuitRange — радиус активации преследования (чебышев).
	PursuitRange = 3
)
