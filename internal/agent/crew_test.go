package agent

import (
	"os"
	"testing"

	"pirate-server/internal/domain"
	"pirate-server/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}

func TestPickTargetPrefersMonstersAndSureShots(t *testing.T) {
	targets := []domain.TargetInfo{
		{Type: "Enemy", Position: domain.Position{X: 1, Y: 0}, Distance: 5, HitChance: 0.25},
		{Type: "Enemy", Position: domain.Position{X: 2, Y: 0}, Distance: 2, HitChance: 0.90},
		{Type: "Monster", Position: domain.Position{X: 3, Y: 0}, Distance: 3, HitChance: 0.75},
	}

	target, ok := pickTarget(targets, 10)
	if !ok {
		t.Fatal("expected a target")
	}
	// Монстр с 0.75*2 обгоняет врага с 0.90.
	if target.Type != "Monster" {
		t.Errorf("expected Monster, got %s", target.Type)
	}
}

func TestPickTargetHoldsFireOnLongShots(t *testing.T) {
	targets := []domain.TargetInfo{
		{Type: "Monster", Distance: 5, HitChance: 0.25},
	}

	if _, ok := pickTarget(targets, 10); ok {
		t.Error("must not waste cannonballs on sub-coinflip shots")
	}
}

func TestPickTargetWithoutAmmo(t *testing.T) {
	targets := []domain.TargetInfo{
		{Type: "Enemy", Distance: 1, HitChance: 0.95},
	}

	if _, ok := pickTarget(targets, 0); ok {
		t.Error("must not pick a target with no ammunition")
	}
}

func TestScriptedCaptainChasesTreasure(t *testing.T) {
	scan := domain.ScanReport{
		Treasures: []domain.Sighting{{Distance: 2, Position: domain.Position{X: 5, Y: 3}}},
	}
	moves := []domain.MoveOption{
		{Dx: 0, Dy: -2, Distance: 2, CanMove: true, Path: []domain.Position{{X: 5, Y: 4}, {X: 5, Y: 3}}, TreasuresOnPath: 1},
		{Dx: 2, Dy: 0, Distance: 2, CanMove: true, Path: []domain.Position{{X: 6, Y: 5}, {X: 7, Y: 5}}},
		{Dx: 0, Dy: 2, Distance: 2, CanMove: false},
	}

	payload, ok := ScriptedCaptain{}.DecideMove(domain.Status{}, scan, moves)
	if !ok {
		t.Fatal("expected a move")
	}
	if payload.Dx != 0 || payload.Dy != -2 {
		t.Errorf("expected treasure move (0,-2), got (%d,%d)", payload.Dx, payload.Dy)
	}
}

func TestScriptedCaptainHoldsWhenTrapped(t *testing.T) {
	moves := []domain.MoveOption{
		{Dx: 1, Dy: 0, CanMove: false},
		{Dx: 0, Dy: 1, CanMove: false},
	}

	if _, ok := (ScriptedCaptain{}).DecideMove(domain.Status{}, domain.ScanReport{}, moves); ok {
		t.Error("expected no move when everything is blocked")
	}
}

func TestParseOrder(t *testing.T) {
	moves := []domain.MoveOption{
		{Dx: 0, Dy: -2, CanMove: true},
		{Dx: 3, Dy: 0, CanMove: true},
		{Dx: 0, Dy: 1, CanMove: false},
	}

	if p, ok := parseOrder("I sail north: @2N", moves); !ok || p.Dy != -2 {
		t.Errorf("expected (0,-2), got %+v ok=%t", p, ok)
	}
	if p, ok := parseOrder("@3E", moves); !ok || p.Dx != 3 {
		t.Errorf("expected (3,0), got %+v ok=%t", p, ok)
	}
	// Приказ на заблокированный ход отклоняется.
	if _, ok := parseOrder("@1S", moves); ok {
		t.Error("blocked move must not be accepted")
	}
	if _, ok := parseOrder("full speed ahead!", moves); ok {
		t.Error("gibberish must not parse")
	}
}
