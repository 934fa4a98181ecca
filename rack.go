// rack.go
//
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements Rack: the multiset of letters a player holds, and
// the letters_left multiset threaded through each search State.

package scrabble

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Rack is an immutable multiset of rack letters, '?' denoting a blank.
// Extension (removing one letter) returns a new Rack rather than mutating
// the receiver, matching the value-type semantics of the search State it
// is embedded in.
type Rack struct {
	letters map[byte]int
}

// NewRack builds a Rack from a sequence of letters.
func NewRack(letters []byte) Rack {
	m := make(map[byte]int, len(letters))
	for _, l := range letters {
		m[l]++
	}
	return Rack{letters: m}
}

// DistinctLetters returns the distinct letters in the rack in a
// deterministic (sorted) order. Spec.md notes that letter iteration order
// during search does not affect correctness; sorting here only makes
// search traces and tests reproducible.
func (r Rack) DistinctLetters() []byte {
	out := make([]byte, 0, len(r.letters))
	for l := range r.letters {
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}

// Count returns how many of the given letter remain in the rack.
func (r Rack) Count(letter byte) int {
	return r.letters[letter]
}

// IsEmpty reports whether the rack holds no letters.
func (r Rack) IsEmpty() bool {
	return len(r.letters) == 0
}

// Remove returns a new Rack with one occurrence of letter removed. It
// panics if the rack does not contain letter; callers (get_child_states)
// only ever remove letters obtained from DistinctLetters, so this is a
// programmer invariant rather than a runtime input to validate.
func (r Rack) Remove(letter byte) Rack {
	if r.letters[letter] <= 0 {
		panic("scrabble: remove of letter not present in rack")
	}
	next := make(map[byte]int, len(r.letters))
	for l, c := range r.letters {
		next[l] = c
	}
	if next[letter] == 1 {
		delete(next, letter)
	} else {
		next[letter]--
	}
	return Rack{letters: next}
}

// AsBytes returns the rack's letters as a sorted byte slice.
func (r Rack) AsBytes() []byte {
	out := make([]byte, 0, RackSize)
	for _, l := range r.DistinctLetters() {
		for i := 0; i < r.letters[l]; i++ {
			out = append(out, l)
		}
	}
	return out
}

// String renders the rack's letters in sorted order.
func (r Rack) String() string {
	var sb strings.Builder
	sb.Write(r.AsBytes())
	return sb.String()
}
