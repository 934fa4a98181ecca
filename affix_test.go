// affix_test.go
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.

package scrabble

import "testing"

func placeWord(t *testing.T, b *Board, word string, start Point, dir Direction) *Board {
	t.Helper()
	tiles := make([]PlacedTile, len(word))
	p := start
	for i := 0; i < len(word); i++ {
		tiles[i] = PlacedTile{Letter: word[i], Loc: p}
		p = p.Move(dir)
	}
	move, err := NewMove(tiles)
	if err != nil {
		t.Fatalf("NewMove failed: %v", err)
	}
	next, err := b.ExecuteMove(move)
	if err != nil {
		t.Fatalf("ExecuteMove failed: %v", err)
	}
	return next
}

func TestGetConstraintsAtPointLeftAffix(t *testing.T) {
	dict := NewDictionary([]string{"cat", "cats"})
	b := NewBoard(10, 10)
	b = placeWord(t, b, "cat", Point{3, 5}, Right)

	ac, err := GetConstraintsAtPoint(b, dict, Point{6, 5})
	if err != nil {
		t.Fatalf("GetConstraintsAtPoint failed: %v", err)
	}
	affix, ok := ac.Affix(Left)
	if !ok || affix != "cat" {
		t.Fatalf("Affix(Left) = (%q, %v), want (\"cat\", true)", affix, ok)
	}
	if ac.HasAffix(Right) || ac.HasAffix(Up) || ac.HasAffix(Down) {
		t.Errorf("only a Left affix should be present")
	}

	isValidSubmove, isValidMove := ac.CheckConstraints(dict, 's', Right)
	if !isValidSubmove || !isValidMove {
		t.Errorf("'s' should complete \"cat\" into the dictionary word \"cats\"")
	}
	isValidSubmove, isValidMove = ac.CheckConstraints(dict, 'z', Right)
	if isValidSubmove || isValidMove {
		t.Errorf("'z' should not extend \"cat\" into any dictionary word")
	}
}

func TestGetConstraintsAtPointBothAffixes(t *testing.T) {
	dict := NewDictionary([]string{"carts"})
	b := NewBoard(10, 10)
	b = placeWord(t, b, "car", Point{3, 5}, Right)
	b = placeWord(t, b, "s", Point{7, 5}, Right)
	// Empty gap at (6,5) between "car" and the lone "s": car-X-s.

	ac, err := GetConstraintsAtPoint(b, dict, Point{6, 5})
	if err != nil {
		t.Fatalf("GetConstraintsAtPoint failed: %v", err)
	}
	left, ok := ac.Affix(Left)
	if !ok || left != "car" {
		t.Fatalf("Affix(Left) = (%q, %v), want (\"car\", true)", left, ok)
	}
	right, ok := ac.Affix(Right)
	if !ok || right != "s" {
		t.Fatalf("Affix(Right) = (%q, %v), want (\"s\", true)", right, ok)
	}

	_, isValidMove := ac.CheckConstraints(dict, 't', Right)
	if !isValidMove {
		t.Errorf("'t' should bridge \"car\" and \"s\" into \"carts\"")
	}
	_, isValidMove = ac.CheckConstraints(dict, 'z', Right)
	if isValidMove {
		t.Errorf("'z' should not bridge \"car\" and \"s\" into any dictionary word")
	}
}

func TestGetConstraintsAtPointNoAffixes(t *testing.T) {
	dict := NewDictionary([]string{"a"})
	b := NewBoard(10, 10)
	ac, err := GetConstraintsAtPoint(b, dict, Point{5, 5})
	if err != nil {
		t.Fatalf("GetConstraintsAtPoint failed: %v", err)
	}
	if !ac.IsEmpty() {
		t.Errorf("an isolated empty square should have no affixes")
	}
	_, isValidMove := ac.CheckConstraints(dict, 'a', Right)
	if !isValidMove {
		t.Errorf("a single letter forming a dictionary word should be a valid move on an empty board")
	}
	_, isValidMove = ac.CheckConstraints(dict, 'z', Right)
	if isValidMove {
		t.Errorf("a single letter not in the dictionary should not be a valid move")
	}
}

func TestGetConstraintsAtPointInvalidAffix(t *testing.T) {
	dict := NewDictionary([]string{"cat"})
	b := NewBoard(10, 10)
	b = placeWord(t, b, "xyz", Point{3, 5}, Right)
	if _, err := GetConstraintsAtPoint(b, dict, Point{6, 5}); err != ErrInvalidAffix {
		t.Errorf("GetConstraintsAtPoint should report ErrInvalidAffix for a non-word run of tiles, got %v", err)
	}
}

func TestGetConstraintsAtPointOccupiedSquare(t *testing.T) {
	dict := NewDictionary([]string{"cat"})
	b := NewBoard(10, 10)
	b = placeWord(t, b, "cat", Point{3, 5}, Right)
	ac, err := GetConstraintsAtPoint(b, dict, Point{3, 5})
	if err != nil {
		t.Fatalf("GetConstraintsAtPoint on an occupied square should not error: %v", err)
	}
	if ac != nil {
		t.Errorf("GetConstraintsAtPoint on an occupied square should return nil, got %v", ac)
	}
}
