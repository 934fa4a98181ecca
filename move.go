// move.go
//
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements Move and its derived MoveType.

package scrabble

import "strings"

// MoveType classifies a Move by the shape of its placed tiles.
type MoveType int

const (
	// Exchange is a move that places no tiles (a rack exchange).
	Exchange MoveType = iota
	// Singleton places exactly one tile.
	Singleton
	// UpDown places two or more tiles sharing an x-coordinate.
	UpDown
	// LeftRight places two or more tiles sharing a y-coordinate.
	LeftRight
)

func (mt MoveType) String() string {
	switch mt {
	case Exchange:
		return "EXCHANGE"
	case Singleton:
		return "SINGLETON"
	case UpDown:
		return "UP_DOWN"
	case LeftRight:
		return "LEFT_RIGHT"
	default:
		return "UNKNOWN"
	}
}

// Move is an ordered list of placed tiles plus its derived MoveType. Bingo
// is true iff the move places exactly RackSize tiles, awarding the +50
// bonus at scoring time.
type Move struct {
	Tiles []PlacedTile
	Type  MoveType
}

// NewMove derives a Move's Type from its tiles and validates their shape.
// Tiles sharing neither a row nor a column is an ErrInvalidMoveShape.
func NewMove(tiles []PlacedTile) (Move, error) {
	switch len(tiles) {
	case 0:
		return Move{Type: Exchange}, nil
	case 1:
		return Move{Tiles: tiles, Type: Singleton}, nil
	}
	sameX, sameY := true, true
	x0, y0 := tiles[0].Loc.X, tiles[0].Loc.Y
	for _, t := range tiles[1:] {
		if t.Loc.X != x0 {
			sameX = false
		}
		if t.Loc.Y != y0 {
			sameY = false
		}
	}
	switch {
	case sameX:
		return Move{Tiles: tiles, Type: UpDown}, nil
	case sameY:
		return Move{Tiles: tiles, Type: LeftRight}, nil
	default:
		return Move{}, ErrInvalidMoveShape
	}
}

// IsBingo reports whether the move places exactly RackSize tiles.
func (m Move) IsBingo() bool {
	return len(m.Tiles) == RackSize
}

// String renders the move as "{(x1,y1):L1, (x2,y2):L2, ...}", the format
// required for CLI/server output.
func (m Move) String() string {
	if len(m.Tiles) == 0 {
		return "{EXCHANGE}"
	}
	parts := make([]string, len(m.Tiles))
	for i, t := range m.Tiles {
		parts[i] = t.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
