// loader_test.go
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.

package scrabble

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestLoadDictionaryFile(t *testing.T) {
	path := writeTempFile(t, "dict.txt", "Cat\ncats\nCAR!\n\ndog2\n")
	dict, err := LoadDictionaryFile(path)
	if err != nil {
		t.Fatalf("LoadDictionaryFile failed: %v", err)
	}
	for _, word := range []string{"cat", "cats", "car", "dog"} {
		if !dict.Contains(word) {
			t.Errorf("dictionary should contain %q after cleaning", word)
		}
	}
	if dict.Len() != 4 {
		t.Errorf("Len() = %d, want 4", dict.Len())
	}
}

func TestLoadBoardFile(t *testing.T) {
	contents := "w3 -  -  l2\n-  w2 -  -\n-  -  w2 -\nl2 -  -  w3\n"
	path := writeTempFile(t, "board.txt", contents)
	board, err := LoadBoardFile(path)
	if err != nil {
		t.Fatalf("LoadBoardFile failed: %v", err)
	}
	if board.Width != 4 || board.Height != 4 {
		t.Fatalf("board dimensions = %dx%d, want 4x4", board.Width, board.Height)
	}
	if board.Squares[0][0].Bonus != TripleWord {
		t.Errorf("(0,0) should carry a TripleWord bonus")
	}
	if board.Squares[3][0].Bonus != DoubleLetter {
		t.Errorf("(3,0) should carry a DoubleLetter bonus")
	}
	if board.NumTiles != 0 {
		t.Errorf("a board file with no letters should have NumTiles 0")
	}
}

func TestLoadBoardFileWithPrePlacedTile(t *testing.T) {
	contents := "- - -\n- c -\n- - -\n"
	path := writeTempFile(t, "board.txt", contents)
	board, err := LoadBoardFile(path)
	if err != nil {
		t.Fatalf("LoadBoardFile failed: %v", err)
	}
	if !board.HasTileAt(Point{1, 1}) {
		t.Errorf("the pre-placed 'c' should land at (1,1)")
	}
	if board.NumTiles != 1 {
		t.Errorf("NumTiles = %d, want 1", board.NumTiles)
	}
}

func TestLoadBoardFileRejectsRaggedRows(t *testing.T) {
	contents := "- - -\n- -\n"
	path := writeTempFile(t, "board.txt", contents)
	if _, err := LoadBoardFile(path); err == nil {
		t.Errorf("LoadBoardFile should reject rows of inconsistent width")
	}
}

func TestLoadBoardFileRejectsInvalidToken(t *testing.T) {
	contents := "- - w9\n- - -\n- - -\n"
	path := writeTempFile(t, "board.txt", contents)
	if _, err := LoadBoardFile(path); err == nil {
		t.Errorf("LoadBoardFile should reject an unrecognized square token")
	}
}
