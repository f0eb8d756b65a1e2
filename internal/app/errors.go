// internal/app/errors.go
package app

import (
	"errors"
	"fmt"

	"go-td-sim/internal/defs"
	"go-td-sim/internal/types"
)

var (
	ErrSessionNotRunning = errors.New("session is not running")
	ErrOutOfBounds       = errors.New("cell is outside the grid")
	ErrOnPath            = errors.New("cell is on an enemy path")
	ErrOccupied          = errors.New("cell already has a tower")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownTower      = errors.New("no such tower")
	ErrMaxLevelReached   = errors.New("tower is at max level")
)

// PlacementError describes a rejected PlaceTower request.
type PlacementError struct {
	Kind defs.TowerKind
	X, Y int
	Err  error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("place %s at (%d,%d): %v", e.Kind, e.X, e.Y, e.Err)
}

func (e *PlacementError) Unwrap() error { return e.Err }

// UpgradeError describes a rejected UpgradeTower request.
type UpgradeError struct {
	TowerID types.EntityID
	Err     error
}

func (e *UpgradeError) Error() string {
	return fmt.Sprintf("upgrade tower %d: %v", e.TowerID, e.Err)
}

func (e *UpgradeError) Unwrap() error { return e.Err }
