// state.go
//
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements State and TerminalState: one partial extension of a
// move along one axis, and the child/terminal generation that drives the
// search. Grounded on original_source/scrabble/solver/state.py, with one
// deliberate deviation documented in DESIGN.md: a terminal is considered
// even when a child cannot be emitted, per spec.md's literal wording.

package scrabble

// State is one node of the search: the rack letters not yet used, the move
// built so far, the next empty square to fill, the AffixConstraints at
// that square, the axis being extended along, and whether the move has
// connected to an existing tile (or the start square). States are
// immutable; get_child_states never mutates the receiver.
type State struct {
	LettersLeft Rack
	Move        Move
	Point       Point
	Constraints *AffixConstraints
	Direction   Direction
	TouchesTile bool
}

// TerminalState is a State enriched with the complete score breakdown for
// its Move. It is generated when placing some rack letter at Point forms
// valid words in both directions and the move touches an existing tile
// (or the start square, on the opening move).
type TerminalState struct {
	State
	Score ScoreBreakdown
}

// GetChildStates expands s by trying every distinct remaining rack letter
// at s.Point. It returns the terminal states reachable by stopping here,
// and the child states reachable by continuing the extension.
func (s State) GetChildStates(ctx *Context) (terminals []TerminalState, children []State) {
	for _, letter := range s.LettersLeft.DistinctLetters() {
		isValidSubmove, isValidMove := s.Constraints.CheckConstraints(ctx.Dict, letter, s.Direction)
		if !isValidSubmove {
			continue
		}

		newTiles := make([]PlacedTile, len(s.Move.Tiles)+1)
		copy(newTiles, s.Move.Tiles)
		newTiles[len(s.Move.Tiles)] = PlacedTile{Letter: letter, Loc: s.Point}
		newMove, err := NewMove(newTiles)
		if err != nil {
			// All tiles lie along a single axis by construction; this
			// should never happen, and if it somehow did the move is
			// simply not usable.
			continue
		}

		newPoint := s.Point.Move(s.Direction)
		touchesAfter := s.TouchesTile || ctx.Board.PointTouchesTiles(newPoint)

		postBoard, err := ctx.Board.ExecuteMove(newMove)
		if err != nil {
			// The letters placed so far no longer fit the original
			// board; nothing further can be derived from this branch.
			continue
		}

		if postBoard.CanPlaceTileAt(newPoint) {
			if newConstraints, err := ctx.ConstraintsAt(postBoard, newPoint); err == nil {
				children = append(children, State{
					LettersLeft: s.LettersLeft.Remove(letter),
					Move:        newMove,
					Point:       newPoint,
					Constraints: newConstraints,
					Direction:   s.Direction,
					TouchesTile: touchesAfter,
				})
			}
			// An InvalidAffix here means the board reached by this
			// branch is already inconsistent; skip the child rather
			// than propagate (constraint construction failures are
			// always recovered locally).
		}
		// If new_point is not placeable, no child is emitted -- but a
		// terminal may still be emitted below (spec.md §4.4 step 8).

		if isValidMove && touchesAfter && len(newMove.Tiles) >= 1 {
			if breakdown, err := ctx.ScoreMove(newMove, false); err == nil {
				terminals = append(terminals, TerminalState{
					State: State{
						LettersLeft: s.LettersLeft.Remove(letter),
						Move:        newMove,
						Point:       newPoint,
						Direction:   s.Direction,
						TouchesTile: touchesAfter,
					},
					Score: breakdown,
				})
			}
		}
	}
	return terminals, children
}
