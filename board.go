// board.go
//
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the Board: an immutable grid of squares holding
// tiles and bonus markers, word reading along an axis, and the single-word
// scoring rule that treats bonus squares as inert once covered.

package scrabble

import (
	"fmt"
	"strings"
)

// Bonus identifies a board square's score multiplier. A square's Bonus
// counts only while the square is empty: ExecuteMove leaves the field set,
// but ScoreSingleWord ignores it once a tile covers the square (see
// DESIGN.md, Open Question 1).
type Bonus int

const (
	NoBonus Bonus = iota
	DoubleLetter
	TripleLetter
	DoubleWord
	TripleWord
)

// Square is one cell of the Board.
type Square struct {
	// Letter is 0 if the square is empty.
	Letter byte
	Bonus  Bonus
}

func (sq Square) String() string {
	if sq.Letter != 0 {
		return string(sq.Letter)
	}
	switch sq.Bonus {
	case DoubleLetter:
		return "l2"
	case TripleLetter:
		return "l3"
	case DoubleWord:
		return "w2"
	case TripleWord:
		return "w3"
	default:
		return "-"
	}
}

// Board is a width x height grid of Squares. A Board is immutable once
// constructed: ExecuteMove returns a fresh Board rather than mutating the
// receiver, so a single Board may be shared read-only across many
// concurrent searches.
type Board struct {
	Width    int
	Height   int
	Squares  [][]Square // indexed [x][y]
	NumTiles int
}

// NewBoard creates an empty board of the given dimensions, with no bonus
// squares set.
func NewBoard(width, height int) *Board {
	squares := make([][]Square, width)
	for x := range squares {
		squares[x] = make([]Square, height)
	}
	return &Board{Width: width, Height: height, Squares: squares}
}

// StartPoint returns the distinguished start square, (W/2, H/2).
func (b *Board) StartPoint() Point {
	return Point{b.Width / 2, b.Height / 2}
}

// InBounds reports whether p lies within [0,Width) x [0,Height).
func (b *Board) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// SquareAt returns a pointer to the square at p, or nil if out of bounds.
func (b *Board) SquareAt(p Point) *Square {
	if !b.InBounds(p) {
		return nil
	}
	return &b.Squares[p.X][p.Y]
}

// HasTileAt reports whether p is in bounds and holds a tile.
func (b *Board) HasTileAt(p Point) bool {
	sq := b.SquareAt(p)
	return sq != nil && sq.Letter != 0
}

// CanPlaceTileAt reports whether p is in bounds and empty.
func (b *Board) CanPlaceTileAt(p Point) bool {
	sq := b.SquareAt(p)
	return sq != nil && sq.Letter == 0
}

// PointTouchesTiles reports whether p is the start square, or any of its
// four neighbors holds a tile. On an empty board this is true exactly for
// the start square, since no neighbor can have a tile yet; that degenerate
// case falls directly out of this one rule without special-casing it.
func (b *Board) PointTouchesTiles(p Point) bool {
	if p == b.StartPoint() {
		return true
	}
	for _, d := range [4]Direction{Up, Down, Left, Right} {
		if b.HasTileAt(p.Move(d)) {
			return true
		}
	}
	return false
}

// clone returns a deep copy of the board.
func (b *Board) clone() *Board {
	squares := make([][]Square, b.Width)
	for x := range squares {
		squares[x] = make([]Square, b.Height)
		copy(squares[x], b.Squares[x])
	}
	return &Board{Width: b.Width, Height: b.Height, Squares: squares, NumTiles: b.NumTiles}
}

// ExecuteMove returns a new Board with the move's placed tiles written in.
// It fails with ErrSquareOccupied if any target square is already filled.
func (b *Board) ExecuteMove(move Move) (*Board, error) {
	next := b.clone()
	for _, t := range move.Tiles {
		sq := next.SquareAt(t.Loc)
		if sq == nil {
			return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, t.Loc)
		}
		if sq.Letter != 0 {
			return nil, fmt.Errorf("%w: %s", ErrSquareOccupied, t.Loc)
		}
		sq.Letter = t.Letter
		next.NumTiles++
	}
	return next, nil
}

// wordAt walks outward from p in both directions along the given reading
// direction (Right for horizontal, Down for vertical), returning the
// maximal contiguous run of tiled squares through p in reading order. It
// returns (nil, false) if the run has length <= 1.
func (b *Board) wordAt(p Point, reading Direction) ([]PlacedTile, bool) {
	if !b.HasTileAt(p) {
		return nil, false
	}
	back := reading.Inverse()
	start := p
	for b.HasTileAt(start.Move(back)) {
		start = start.Move(back)
	}
	var tiles []PlacedTile
	cur := start
	for b.HasTileAt(cur) {
		sq := b.SquareAt(cur)
		tiles = append(tiles, PlacedTile{Letter: sq.Letter, Loc: cur})
		cur = cur.Move(reading)
	}
	if len(tiles) <= 1 {
		return nil, false
	}
	return tiles, true
}

// GetHorizontalWordAt returns the maximal horizontal tile run through p, or
// (nil, false) if its length is <= 1.
func (b *Board) GetHorizontalWordAt(p Point) ([]PlacedTile, bool) {
	return b.wordAt(p, Right)
}

// GetVerticalWordAt returns the maximal vertical tile run through p, or
// (nil, false) if its length is <= 1.
func (b *Board) GetVerticalWordAt(p Point) ([]PlacedTile, bool) {
	return b.wordAt(p, Down)
}

// ScoreSingleWord scores one formed word. tiles must be read off the board
// that results after the move producing them is applied; b (the receiver)
// must be the board as it stood immediately before that move, so that
// squares still carrying a Bonus marker are exactly the ones newly covered.
// Squares that already held a letter before the move (extensions of a
// pre-existing word) contribute only their letter score.
func (b *Board) ScoreSingleWord(tiles []PlacedTile, tileScores map[byte]int) int {
	total := 0
	wordMultiplier := 1
	for _, t := range tiles {
		letterScore := tileScores[t.Letter]
		sq := b.SquareAt(t.Loc)
		if sq != nil && sq.Letter == 0 {
			// This square is newly covered by the move: its bonus applies.
			switch sq.Bonus {
			case DoubleLetter:
				letterScore *= 2
			case TripleLetter:
				letterScore *= 3
			case DoubleWord:
				wordMultiplier *= 2
			case TripleWord:
				wordMultiplier *= 3
			}
		}
		total += letterScore
	}
	return total * wordMultiplier
}

// ToStrings renders the board as one string per row (y), for display and
// for the simulation harness.
func (b *Board) ToStrings() []string {
	rows := make([]string, b.Height)
	for y := 0; y < b.Height; y++ {
		var sb strings.Builder
		for x := 0; x < b.Width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.Squares[x][y].String())
		}
		rows[y] = sb.String()
	}
	return rows
}

// String renders the board with row/column rulers, in the teacher's style.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < b.Width; x++ {
		fmt.Fprintf(&sb, "%2d ", x)
	}
	sb.WriteString("\n")
	for y, row := range b.ToStrings() {
		fmt.Fprintf(&sb, "%2d ", y)
		for _, tok := range strings.Fields(row) {
			fmt.Fprintf(&sb, "%2s ", tok)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
