package systems

import (
	"math/rand"
	"testing"

	"pirate-server/internal/domain"
)

func TestHitChanceTable(t *testing.T) {
	cases := map[int]float64{
		1: 0.95,
		2: 0.90,
		3: 0.75,
		4: 0.50,
		5: 0.25,
	}
	for dist, want := range cases {
		if got := HitChance(dist); got != want {
			t.Errorf("distance %d: expected %.2f, got %.2f", dist, want, got)
		}
	}

	// Вне таблицы — дефолт 0.25.
	if got := HitChance(7); got != 0.25 {
		t.Errorf("out-of-table distance: expected 0.25, got %.2f", got)
	}
	if got := HitChance(0); got != 0.25 {
		t.Errorf("distance 0: expected 0.25, got %.2f", got)
	}
}

func TestResolveShotDeterministicWithSeed(t *testing.T) {
	// Один и тот же сид — одна и та же последовательность исходов.
	first := shotSequence(42, 20)
	second := shotSequence(42, 20)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("shot %d differs between identical seeds", i)
		}
	}
}

func shotSequence(seed int64, n int) []bool {
	rng := rand.New(rand.NewSource(seed))
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i], _ = ResolveShot(rng, domain.CellEnemy, 3)
	}
	return out
}

func TestResolveShotProbabilityConformance(t *testing.T) {
	const trials = 20000
	cases := []struct {
		distance int
		expected float64
	}{
		{1, 0.95},
		{3, 0.75},
		{5, 0.25},
	}

	for _, c := range cases {
		rng := rand.New(rand.NewSource(7))
		hits := 0
		for i := 0; i < trials; i++ {
			if hit, _ := ResolveShot(rng, domain.CellMonster, c.distance); hit {
				hits++
			}
		}
		rate := float64(hits) / trials
		// 20k бросков: допуск 0.02 — это больше шести сигм.
		if rate < c.expected-0.02 || rate > c.expected+0.02 {
			t.Errorf("distance %d: hit rate %.3f too far from %.2f", c.distance, rate, c.expected)
		}
	}
}
