// searchdriver_test.go
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.

package scrabble

import "testing"

func TestDriverSearchFindsOpeningWord(t *testing.T) {
	dict := NewDictionary([]string{"cat", "at", "ta"})
	board := NewBoard(15, 15)
	ctx := NewContext(board, dict, NewRack([]byte("cat")), EnglishTileSet)
	priority, _ := NewPriorityCalculator("total_score")
	pruner, _ := NewPruningStrategy("never")
	ranker, _ := NewRankingStrategy("max_score")
	driver := NewDriver(ctx, priority, pruner, ranker)

	move := driver.Search()
	if len(move.Tiles) == 0 {
		t.Fatalf("Search should find a move on an empty board with a rack that spells \"cat\"")
	}
	breakdown, err := ctx.ScoreMove(move, true)
	if err != nil {
		t.Fatalf("the chosen move failed validation: %v", err)
	}
	if breakdown.Words[0] != "cat" {
		t.Errorf("Search should find \"cat\", the only 3-tile word available, got %v", breakdown.Words)
	}
}

func TestDriverSearchPrefersHigherScore(t *testing.T) {
	dict := NewDictionary([]string{"ax", "at"})
	board := NewBoard(15, 15)
	ctx := NewContext(board, dict, NewRack([]byte("atx")), EnglishTileSet)
	priority, _ := NewPriorityCalculator("total_score")
	pruner, _ := NewPruningStrategy("never")
	ranker, _ := NewRankingStrategy("max_score")
	driver := NewDriver(ctx, priority, pruner, ranker)

	move := driver.Search()
	breakdown, err := ctx.ScoreMove(move, true)
	if err != nil {
		t.Fatalf("the chosen move failed validation: %v", err)
	}
	// "ax" (1 + 8 = 9) outscores "at" (1 + 1 = 2); the ranker must prefer it.
	if breakdown.Words[0] != "ax" {
		t.Errorf("Search should prefer the higher-scoring word \"ax\" over \"at\", got %v", breakdown.Words)
	}
}

func TestDriverSearchNoMoveReturnsExchange(t *testing.T) {
	dict := NewDictionary([]string{"zzz"})
	board := NewBoard(15, 15)
	ctx := NewContext(board, dict, NewRack([]byte("q")), EnglishTileSet)
	priority, _ := NewPriorityCalculator("uniform")
	pruner, _ := NewPruningStrategy("never")
	ranker, _ := NewRankingStrategy("max_score")
	driver := NewDriver(ctx, priority, pruner, ranker)

	move := driver.Search()
	if move.Type != Exchange {
		t.Errorf("Search with no valid move available should return an EXCHANGE move, got %v", move.Type)
	}
}
