package systems

import (
	"math/rand"

	"pirate-server/internal/domain"
	"pirate-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Таблица точности пушек по манхэттенову расстоянию.
// Дефицит ядер + падение точности с дистанцией — основная ось риска боя,
// таблицу менять нельзя.
var hitProbabilities = map[int]float64{
	1: 0.95,
	2: 0.90,
	3: 0.75,
	4: 0.50,
	5: 0.25,
}

const defaultHitChance = 0.25

// HitChance возвращает вероятность попадания для дистанции 1..5.
// Вне таблицы (при проверке дальности такого не бывает) — 0.25.
func HitChance(distance int) float64 {
	if p, ok := hitProbabilities[distance]; ok {
		return p
	}
	return defaultHitChance
}

// ResolveShot разыгрывает выстрел по враждебной клетке: ровно одна
// выборка из rng на выстрел, попадание при roll <= chance.
func ResolveShot(rng *rand.Rand, target domain.CellType, distance int) (hit bool, chance float64) {
	chance = HitChance(distance)
	roll := rng.Float64()
	hit = roll <= chance

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"target":    target.Name(),
		"distance":  distance,
		"chance":    chance,
		"roll":      roll,
		"hit":       hit,
	}).Debug("Cannon shot resolved.")

	return hit, chance
}
