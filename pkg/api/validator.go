package api

import (
	"errors"
	"fmt"

	"pirate-server/internal/domain"
)

// Validator — интерфейс, который реализуют payload-DTO.
type Validator interface {
	Validate() error
}

func (p MovePayload) Validate() error {
	if p.Dx == 0 && p.Dy == 0 {
		return errors.New("movement vector cannot be zero")
	}
	if p.Dx != 0 && p.Dy != 0 {
		return errors.New("movement must be axis-aligned")
	}
	if dist := abs(p.Dx) + abs(p.Dy); dist > domain.MaxSailDistance {
		return fmt.Errorf("movement distance %d exceeds maximum of %d", dist, domain.MaxSailDistance)
	}
	return nil
}

func (p FirePayload) Validate() error {
	if p.X < 0 || p.Y < 0 {
		return errors.New("target coordinates must be non-negative")
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
