// context.go
//
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements Context: the read-only bundle of board, dictionary
// and rack a search runs against, plus score_move. Context is shared,
// unmutated, across every worker in the optional pool.

package scrabble

import (
	lru "github.com/hashicorp/golang-lru"
)

// constraintCacheSize bounds the number of AffixConstraints memoized per
// Context. Entries are keyed by board pointer and point; repeats come from
// seeding, which looks up each empty square of the original board once per
// axis, so a modest LRU avoids repeating the trie walk there.
const constraintCacheSize = 4096

type constraintCacheKey struct {
	board *Board
	point Point
}

// Context bundles the board, dictionary, tile score table and rack that a
// search runs against. It is read-only: ScoreMove never mutates the board
// it is given, and the same Context may be shared by many concurrent
// searches (see searchpool.go).
type Context struct {
	Board *Board
	Dict  *Dictionary
	Rack  Rack
	ts    *TileSet
	cache *lru.Cache
}

// NewContext constructs a Context. ts supplies the per-letter score table;
// pass EnglishTileSet for the standard distribution.
func NewContext(board *Board, dict *Dictionary, rack Rack, ts *TileSet) *Context {
	cache, err := lru.New(constraintCacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, which
		// constraintCacheSize never is.
		panic(err)
	}
	return &Context{Board: board, Dict: dict, Rack: rack, ts: ts, cache: cache}
}

// ConstraintsAt returns the AffixConstraints for point p against board b,
// memoizing the result in this Context's LRU cache (at most
// constraintCacheSize entries; older ones are evicted).
func (c *Context) ConstraintsAt(b *Board, p Point) (*AffixConstraints, error) {
	key := constraintCacheKey{board: b, point: p}
	if v, ok := c.cache.Get(key); ok {
		if v == nil {
			return nil, nil
		}
		return v.(*AffixConstraints), nil
	}
	ac, err := GetConstraintsAtPoint(b, c.Dict, p)
	if err != nil {
		// Do not cache failures: a board should never actually be
		// inconsistent, so this is not expected to recur.
		return nil, err
	}
	c.cache.Add(key, ac)
	return ac, nil
}

// ScoreBreakdown is the result of scoring a move: per-word scores, the
// optional bingo bonus, and the total.
type ScoreBreakdown struct {
	Words      []string
	WordScores []int
	Bingo      bool
	Total      int
}

// ScoreMove scores a move against c.Board. If checkValid is true, every
// formed word must be present in the dictionary or ErrUnknownWord is
// returned; the search itself must never produce such a move, so this is
// used only as a final sanity check on the chosen move.
func (c *Context) ScoreMove(move Move, checkValid bool) (ScoreBreakdown, error) {
	if move.Type == Exchange || len(move.Tiles) == 0 {
		return ScoreBreakdown{}, nil
	}
	next, err := c.Board.ExecuteMove(move)
	if err != nil {
		return ScoreBreakdown{}, err
	}

	type wordHit struct {
		tiles []PlacedTile
	}
	var hits []wordHit
	seen := make(map[[2]Point]bool) // dedupe the primary-axis word across placed tiles

	addWord := func(tiles []PlacedTile, ok bool) {
		if !ok {
			return
		}
		key := [2]Point{tiles[0].Loc, tiles[len(tiles)-1].Loc}
		if seen[key] {
			return
		}
		seen[key] = true
		hits = append(hits, wordHit{tiles: tiles})
	}

	switch move.Type {
	case LeftRight:
		for _, t := range move.Tiles {
			w, ok := next.GetHorizontalWordAt(t.Loc)
			addWord(w, ok)
		}
		for _, t := range move.Tiles {
			w, ok := next.GetVerticalWordAt(t.Loc)
			addWord(w, ok)
		}
	case UpDown:
		for _, t := range move.Tiles {
			w, ok := next.GetVerticalWordAt(t.Loc)
			addWord(w, ok)
		}
		for _, t := range move.Tiles {
			w, ok := next.GetHorizontalWordAt(t.Loc)
			addWord(w, ok)
		}
	case Singleton:
		t := move.Tiles[0]
		if w, ok := next.GetHorizontalWordAt(t.Loc); ok {
			addWord(w, true)
		}
		if w, ok := next.GetVerticalWordAt(t.Loc); ok {
			addWord(w, true)
		}
		if len(hits) == 0 {
			// Neither axis forms a multi-letter word: the move is the
			// single placed letter itself.
			hits = append(hits, wordHit{tiles: move.Tiles})
		}
	}

	breakdown := ScoreBreakdown{}
	for _, h := range hits {
		word := make([]byte, len(h.tiles))
		for i, t := range h.tiles {
			word[i] = t.Letter
		}
		wordStr := string(word)
		if checkValid && !c.Dict.Contains(wordStr) {
			return ScoreBreakdown{}, ErrUnknownWord
		}
		score := c.Board.ScoreSingleWord(h.tiles, c.ts.Scores)
		breakdown.Words = append(breakdown.Words, wordStr)
		breakdown.WordScores = append(breakdown.WordScores, score)
		breakdown.Total += score
	}
	if move.IsBingo() {
		breakdown.Bingo = true
		breakdown.Total += BingoBonus
	}
	return breakdown, nil
}
