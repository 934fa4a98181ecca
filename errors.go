// errors.go
//
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// Error kinds surfaced by the move-search core, per the error handling
// design table: most are fatal to the caller, a few are tolerated locally
// by returning a skip signal instead of propagating.

package scrabble

import "errors"

var (
	// ErrOutOfBounds is returned (wrapped) by Board.ExecuteMove when a
	// move places a tile at a Point outside [0,Width) x [0,Height); the
	// indexing helpers (SquareAt, HasTileAt, CanPlaceTileAt) report such
	// points with nil or false instead. The search itself never triggers
	// this; bounds are checked before any indexing.
	ErrOutOfBounds = errors.New("scrabble: point out of bounds")

	// ErrSquareOccupied is returned by Board.ExecuteMove when a move
	// targets a square that already holds a tile.
	ErrSquareOccupied = errors.New("scrabble: square already occupied")

	// ErrInvalidAffix is returned by GetConstraintsAtPoint when the
	// board's existing tiles do not form valid dictionary affixes around
	// an empty point. This indicates the board itself was already
	// inconsistent; the search tolerates it locally, skipping the seed
	// (Driver seeding) or the child state (State.GetChildStates).
	ErrInvalidAffix = errors.New("scrabble: existing tiles do not form a valid affix")

	// ErrInvalidMoveShape is returned when deriving a MoveType from a set
	// of placed tiles that are neither row- nor column-aligned.
	ErrInvalidMoveShape = errors.New("scrabble: placed tiles are not aligned on a single row or column")

	// ErrUnknownWord is returned by Context.ScoreMove(checkValid=true)
	// when a formed word is not present in the dictionary. The search
	// itself must never produce such a move; this is a final sanity
	// check on the chosen move only.
	ErrUnknownWord = errors.New("scrabble: formed word is not in the dictionary")
)
