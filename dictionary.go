// dictionary.go
//
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the Dictionary: a word set plus a prefix trie and a
// suffix trie used by AffixConstraints to validate partial words during the
// search without ever materializing a full word string.

package scrabble

// endToken marks a node reached by a complete word. It is represented as a
// boolean flag on the node rather than a literal sentinel child, which is
// the idiomatic Go rendering of the same invariant: contains(w) iff walking
// w ends at a node with isEnd set.
type TrieNode struct {
	children map[byte]*TrieNode
	isEnd    bool
}

func newTrieNode() *TrieNode {
	return &TrieNode{children: make(map[byte]*TrieNode)}
}

// Child returns the child node reached by the given letter, or (nil, false)
// if no word in the dictionary continues through it.
func (n *TrieNode) Child(letter byte) (*TrieNode, bool) {
	if n == nil {
		return nil, false
	}
	c, ok := n.children[letter]
	return c, ok
}

// IsEnd reports whether a complete word ends at this node.
func (n *TrieNode) IsEnd() bool {
	return n != nil && n.isEnd
}

// Walk follows a sequence of letters from n, returning the terminal node and
// true if every step succeeded.
func (n *TrieNode) Walk(letters string) (*TrieNode, bool) {
	cur := n
	for i := 0; i < len(letters); i++ {
		next, ok := cur.Child(letters[i])
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func (n *TrieNode) insert(word string) {
	cur := n
	for i := 0; i < len(word); i++ {
		b := word[i]
		next, ok := cur.children[b]
		if !ok {
			next = newTrieNode()
			cur.children[b] = next
		}
		cur = next
	}
	cur.isEnd = true
}

// Dictionary is a set of lowercase words plus the prefix and suffix tries
// built from them. It is read-only after construction and safely shared by
// concurrent searches.
type Dictionary struct {
	words      map[string]struct{}
	prefixRoot *TrieNode
	suffixRoot *TrieNode
}

// NewDictionary builds a Dictionary from a list of lowercase words.
func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{
		words:      make(map[string]struct{}, len(words)),
		prefixRoot: newTrieNode(),
		suffixRoot: newTrieNode(),
	}
	for _, w := range words {
		if w == "" {
			continue
		}
		d.words[w] = struct{}{}
		d.prefixRoot.insert(w)
		d.suffixRoot.insert(reverseString(w))
	}
	return d
}

// Contains reports whether word is a member of the dictionary.
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}
	_, ok := d.words[word]
	return ok
}

// PrefixTrie returns the root of the prefix trie (words inserted
// front-to-back).
func (d *Dictionary) PrefixTrie() *TrieNode {
	return d.prefixRoot
}

// SuffixTrie returns the root of the suffix trie (words inserted reversed).
func (d *Dictionary) SuffixTrie() *TrieNode {
	return d.suffixRoot
}

// Len returns the number of distinct words in the dictionary.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

func reverseString(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b[len(s)-1-i] = s[i]
	}
	return string(b)
}
