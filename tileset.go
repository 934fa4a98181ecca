// tileset.go
//
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements TileSet and Bag: the standard English tile
// distribution and scores (spec.md §6), and a randomized bag used only by
// the out-of-core simulation harness in cmd/scrabblesolve. The move-search
// core itself never draws tiles; it only needs the score table.

package scrabble

import (
	"fmt"
	"math/rand"
	"strings"
)

// RackSize is the number of tiles a player's rack holds.
const RackSize = 7

// BingoBonus is the score bonus awarded for placing all RackSize tiles in a
// single move.
const BingoBonus = 50

// TileSet is a static prototype of all tiles in a game: their per-letter
// score and count. A Bag is copied fresh from a TileSet at the start of a
// simulated game.
type TileSet struct {
	Scores map[byte]int
	Counts map[byte]int
	Size   int
}

// initEnglishTileSet builds the standard English Scrabble distribution.
// Blank tiles score 10 points, matching the source this spec was distilled
// from rather than standard Scrabble rules (0) -- see DESIGN.md Open
// Question 2.
func initEnglishTileSet() *TileSet {
	scores := map[byte]int{
		'a': 1, 'e': 1, 'i': 1, 'l': 1, 'n': 1, 'o': 1, 'r': 1, 's': 1, 't': 1, 'u': 1,
		'd': 2, 'g': 2,
		'b': 3, 'c': 3, 'm': 3, 'p': 3,
		'f': 4, 'h': 4, 'v': 4, 'w': 4, 'y': 4,
		'k': 5,
		'j': 8, 'x': 8,
		'q': 10, 'z': 10,
		'?': 10,
	}
	counts := map[byte]int{
		'a': 9, 'b': 2, 'c': 2, 'd': 4, 'e': 12, 'f': 2, 'g': 3, 'h': 2, 'i': 9,
		'j': 1, 'k': 1, 'l': 4, 'm': 2, 'n': 6, 'o': 8, 'p': 2, 'q': 1, 'r': 6,
		's': 4, 't': 6, 'u': 4, 'v': 2, 'w': 2, 'x': 1, 'y': 2, 'z': 1, '?': 2,
	}
	size := 0
	for _, c := range counts {
		size += c
	}
	return &TileSet{Scores: scores, Counts: counts, Size: size}
}

// EnglishTileSet is the standard English tile set.
var EnglishTileSet = initEnglishTileSet()

// Bag is a randomized, mutable pool of undrawn tiles, copied from a
// TileSet at the start of a simulated game.
type Bag struct {
	contents []byte
}

// NewBag returns a freshly shuffled Bag holding every tile in ts.
func NewBag(ts *TileSet) *Bag {
	contents := make([]byte, 0, ts.Size)
	for letter, count := range ts.Counts {
		for i := 0; i < count; i++ {
			contents = append(contents, letter)
		}
	}
	rand.Shuffle(len(contents), func(i, j int) {
		contents[i], contents[j] = contents[j], contents[i]
	})
	return &Bag{contents: contents}
}

// Draw removes and returns up to n tiles from the bag.
func (b *Bag) Draw(n int) []byte {
	if n > len(b.contents) {
		n = len(b.contents)
	}
	drawn := b.contents[:n]
	b.contents = b.contents[n:]
	return drawn
}

// TileCount returns the number of tiles remaining in the bag.
func (b *Bag) TileCount() int {
	return len(b.contents)
}

func (b *Bag) String() string {
	if b.TileCount() == 0 {
		return "empty"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "(%d tiles): ", b.TileCount())
	sb.Write(b.contents)
	return sb.String()
}
