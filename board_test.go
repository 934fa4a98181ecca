// board_test.go
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.

package scrabble

import "testing"

func TestBoardStartPoint(t *testing.T) {
	b := NewBoard(15, 15)
	want := Point{7, 7}
	if got := b.StartPoint(); got != want {
		t.Errorf("StartPoint() = %v, want %v", got, want)
	}
}

func TestBoardInBounds(t *testing.T) {
	b := NewBoard(5, 3)
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{4, 2}, true},
		{Point{5, 2}, false},
		{Point{4, 3}, false},
		{Point{-1, 0}, false},
	}
	for _, c := range cases {
		if got := b.InBounds(c.p); got != c.want {
			t.Errorf("InBounds(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestBoardPointTouchesTiles(t *testing.T) {
	b := NewBoard(5, 5)
	start := b.StartPoint()
	if !b.PointTouchesTiles(start) {
		t.Errorf("the start square should touch tiles on an empty board")
	}
	other := Point{0, 0}
	if b.PointTouchesTiles(other) {
		t.Errorf("a non-start square should not touch tiles on an empty board")
	}
	move, err := NewMove([]PlacedTile{{Letter: 'a', Loc: start}})
	if err != nil {
		t.Fatalf("NewMove failed: %v", err)
	}
	next, err := b.ExecuteMove(move)
	if err != nil {
		t.Fatalf("ExecuteMove failed: %v", err)
	}
	neighbor := start.Move(Right)
	if !next.PointTouchesTiles(neighbor) {
		t.Errorf("a square adjacent to a placed tile should touch tiles")
	}
}

func TestBoardExecuteMoveRejectsOccupied(t *testing.T) {
	b := NewBoard(5, 5)
	p := Point{2, 2}
	move, _ := NewMove([]PlacedTile{{Letter: 'a', Loc: p}})
	next, err := b.ExecuteMove(move)
	if err != nil {
		t.Fatalf("first ExecuteMove failed: %v", err)
	}
	move2, _ := NewMove([]PlacedTile{{Letter: 'b', Loc: p}})
	if _, err := next.ExecuteMove(move2); err == nil {
		t.Errorf("ExecuteMove onto an occupied square should fail")
	}
}

func TestBoardExecuteMoveRejectsOutOfBounds(t *testing.T) {
	b := NewBoard(5, 5)
	move, _ := NewMove([]PlacedTile{{Letter: 'a', Loc: Point{10, 10}}})
	if _, err := b.ExecuteMove(move); err == nil {
		t.Errorf("ExecuteMove off the board should fail")
	}
}

func TestBoardWordAt(t *testing.T) {
	b := NewBoard(10, 10)
	tiles := []PlacedTile{
		{Letter: 'c', Loc: Point{3, 5}},
		{Letter: 'a', Loc: Point{4, 5}},
		{Letter: 't', Loc: Point{5, 5}},
	}
	move, err := NewMove(tiles)
	if err != nil {
		t.Fatalf("NewMove failed: %v", err)
	}
	next, err := b.ExecuteMove(move)
	if err != nil {
		t.Fatalf("ExecuteMove failed: %v", err)
	}
	word, ok := next.GetHorizontalWordAt(Point{4, 5})
	if !ok {
		t.Fatalf("GetHorizontalWordAt should find the word \"cat\"")
	}
	if s := string(lettersOf(word)); s != "cat" {
		t.Errorf("word = %q, want %q", s, "cat")
	}
	if _, ok := next.GetVerticalWordAt(Point{4, 5}); ok {
		t.Errorf("GetVerticalWordAt should find no vertical word through a single horizontal tile")
	}
}

func lettersOf(tiles []PlacedTile) []byte {
	out := make([]byte, len(tiles))
	for i, t := range tiles {
		out[i] = t.Letter
	}
	return out
}

func TestBoardScoreSingleWordBonusOnlyAppliesOnce(t *testing.T) {
	b := NewBoard(5, 5)
	p := Point{2, 2}
	b.Squares[p.X][p.Y].Bonus = DoubleWord

	move, _ := NewMove([]PlacedTile{{Letter: 'a', Loc: p}})
	score := b.ScoreSingleWord(move.Tiles, EnglishTileSet.Scores)
	if score != 2 {
		t.Errorf("first placement should get the double-word bonus: score = %d, want 2", score)
	}

	next, err := b.ExecuteMove(move)
	if err != nil {
		t.Fatalf("ExecuteMove failed: %v", err)
	}
	// Score the same square again using the post-move board as the
	// receiver: the bonus must not re-apply since the square is no
	// longer empty.
	scoreAgain := next.ScoreSingleWord(move.Tiles, EnglishTileSet.Scores)
	if scoreAgain != 1 {
		t.Errorf("a covered bonus square must not re-apply: score = %d, want 1", scoreAgain)
	}
}
